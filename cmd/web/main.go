// @title           LexHub API
// @version         1.0
// @description     Каталог юристов, модерация заявок и AI-консультант (документация Swagger).
// @contact.name    LexHub
// @contact.email   support@lexhub.example
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1
// @securityDefinitions.apikey SessionToken
// @in header
// @name Authorization

package main

import (
	_ "lexhub_backend/docs"
	"lexhub_backend/internal/app"
)

func main() {
	app.Run()
}
