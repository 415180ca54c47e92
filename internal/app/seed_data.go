package app

import "lexhub_backend/internal/models"

func sub(order int, en, zhCn, zhTw string) models.Subcategory {
	return models.Subcategory{NameEn: en, NameZhCn: zhCn, NameZhTw: zhTw, Order: order}
}

func seedCategories() []models.Category {
	return []models.Category{
		{
			Key:      models.CategoryFamilyLaw,
			NameEn:   "Family Law",
			NameZhCn: "家庭法",
			NameZhTw: "家庭法",
			DescEn:   "Divorce, child custody, child support, alimony, adoption, and domestic violence protection",
			DescZhCn: "离婚、子女监护权、子女抚养费、赡养费、收养和家庭暴力保护",
			DescZhTw: "離婚、子女監護權、子女撫養費、贍養費、收養和家庭暴力保護",
			Icon:     "👨‍👩‍👧‍👦",
			Order:    1,
			IsActive: true,
			Subcategories: []models.Subcategory{
				sub(1, "Divorce", "离婚", "離婚"),
				sub(2, "Child Custody", "子女监护权", "子女監護權"),
				sub(3, "Child Support", "子女抚养费", "子女撫養費"),
				sub(4, "Alimony", "赡养费", "贍養費"),
				sub(5, "Adoption", "收养", "收養"),
				sub(6, "Domestic Violence", "家庭暴力", "家庭暴力"),
			},
		},
		{
			Key:      models.CategoryConsumerDebt,
			NameEn:   "Consumer & Debt",
			NameZhCn: "消费者与债务",
			NameZhTw: "消費者與債務",
			DescEn:   "Credit card debt collection, car repossession, payday loans, bankruptcy, credit reporting errors, and identity theft",
			DescZhCn: "信用卡债务追收、汽车收回、发薪日贷款、破产、信用报告错误和身份盗窃",
			DescZhTw: "信用卡債務追收、汽車收回、發薪日貸款、破產、信用報告錯誤和身份盜竊",
			Icon:     "💳",
			Order:    2,
			IsActive: true,
			Subcategories: []models.Subcategory{
				sub(1, "Credit Card Debt", "信用卡债务", "信用卡債務"),
				sub(2, "Car Repossession", "汽车收回", "汽車收回"),
				sub(3, "Payday Loans", "发薪日贷款", "發薪日貸款"),
				sub(4, "Bankruptcy", "破产", "破產"),
				sub(5, "Credit Reporting Errors", "信用报告错误", "信用報告錯誤"),
				sub(6, "Identity Theft", "身份盗窃", "身份盜竊"),
			},
		},
		{
			Key:      models.CategoryHousingLandlord,
			NameEn:   "Housing & Landlord-Tenant",
			NameZhCn: "住房与房东租客",
			NameZhTw: "住房與房東租客",
			DescEn:   "Evictions, rent increases, security deposit disputes, and unsafe housing conditions",
			DescZhCn: "驱逐、租金上涨、押金纠纷和不安全的住房条件",
			DescZhTw: "驅逐、租金上漲、押金糾紛和不安全的住房條件",
			Icon:     "🏠",
			Order:    3,
			IsActive: true,
			Subcategories: []models.Subcategory{
				sub(1, "Evictions", "驱逐", "驅逐"),
				sub(2, "Rent Increases", "租金上涨", "租金上漲"),
				sub(3, "Security Deposit Disputes", "押金纠纷", "押金糾紛"),
				sub(4, "Unsafe Housing Conditions", "不安全的住房条件", "不安全的住房條件"),
			},
		},
		{
			Key:      models.CategoryWillsEstates,
			NameEn:   "Wills, Estates & Probate",
			NameZhCn: "遗嘱、遗产与遗嘱认证",
			NameZhTw: "遺囑、遺產與遺囑認證",
			DescEn:   "Writing wills, setting up trusts, power of attorney, and estate administration after death",
			DescZhCn: "撰写遗嘱、设立信托、授权书和死后遗产管理",
			DescZhTw: "撰寫遺囑、設立信託、授權書和死後遺產管理",
			Icon:     "📜",
			Order:    4,
			IsActive: true,
			Subcategories: []models.Subcategory{
				sub(1, "Writing Wills", "撰写遗嘱", "撰寫遺囑"),
				sub(2, "Setting Up Trusts", "设立信托", "設立信託"),
				sub(3, "Power of Attorney", "授权书", "授權書"),
				sub(4, "Estate Administration", "遗产管理", "遺產管理"),
			},
		},
		{
			Key:      models.CategoryImmigration,
			NameEn:   "Immigration",
			NameZhCn: "移民",
			NameZhTw: "移民",
			DescEn:   "Green card applications, asylum, citizenship (naturalization), deportation defense, and work visas",
			DescZhCn: "绿卡申请、庇护、公民身份（入籍）、驱逐辩护和工作签证",
			DescZhTw: "綠卡申請、庇護、公民身份（入籍）、驅逐辯護和工作簽證",
			Icon:     "✈️",
			Order:    5,
			IsActive: true,
			Subcategories: []models.Subcategory{
				sub(1, "Green Card Applications", "绿卡申请", "綠卡申請"),
				sub(2, "Asylum", "庇护", "庇護"),
				sub(3, "Citizenship (Naturalization)", "公民身份（入籍）", "公民身份（入籍）"),
				sub(4, "Deportation Defense", "驱逐辩护", "驅逐辯護"),
				sub(5, "Work Visas", "工作签证", "工作簽證"),
			},
		},
		{
			Key:      models.CategoryCryptoCompliance,
			NameEn:   "Crypto Compliance",
			NameZhCn: "加密货币合规",
			NameZhTw: "加密貨幣合規",
			DescEn:   "Cryptocurrency regulations, exchange compliance, ICO legal opinions, AML/KYC requirements, and token classification",
			DescZhCn: "加密货币法规、交易所合规、ICO法律意见、AML/KYC要求和代币分类",
			DescZhTw: "加密貨幣法規、交易所合規、ICO法律意見、AML/KYC要求和代幣分類",
			Icon:     "₿",
			Order:    6,
			IsActive: true,
			Subcategories: []models.Subcategory{
				sub(1, "Cryptocurrency Regulations", "加密货币法规", "加密貨幣法規"),
				sub(2, "Exchange Compliance", "交易所合规", "交易所合規"),
				sub(3, "ICO Legal Opinions", "ICO法律意见", "ICO法律意見"),
				sub(4, "AML/KYC Requirements", "AML/KYC要求", "AML/KYC要求"),
				sub(5, "Token Classification", "代币分类", "代幣分類"),
			},
		},
	}
}

// demoLawyer - одобренный юрист для демо-каталога
type demoLawyer struct {
	email           string
	firstName       string
	lastName        string
	barNumber       string
	barState        string
	city            string
	state           string
	zipCode         string
	officeAddress   string
	officePhone     string
	website         string
	bio             string
	years           int
	lawSchool       string
	certifications  []string
	hourlyRate      float64
	consultationFee float64
	categories      []models.CategoryKey // первая - основная
	languages       []models.Language    // первый - основной
	rating          float64
	consultations   int
}

var demoLawyers = []demoLawyer{
	{
		email: "john.smith@lawfirm.com", firstName: "John", lastName: "Smith",
		barNumber: "CA123456", barState: "CA", city: "Los Angeles", state: "CA", zipCode: "90001",
		officeAddress: "123 Legal Plaza, Suite 500", officePhone: "(310) 555-0101", website: "https://johnsmithlaw.com",
		bio:            "Experienced family law attorney with over 15 years of practice. Specializing in divorce, child custody, and domestic violence cases.",
		years:          15,
		lawSchool:      "UCLA School of Law, JD",
		certifications: []string{"Certified Family Law Specialist - State Bar of California", "Mediation Certification"},
		hourlyRate:     350, consultationFee: 150,
		categories: []models.CategoryKey{models.CategoryFamilyLaw},
		languages:  []models.Language{models.LanguageEnglish, models.LanguageSpanish},
		rating:     4.8, consultations: 156,
	},
	{
		email: "maria.garcia@legalaid.com", firstName: "Maria", lastName: "Garcia",
		barNumber: "TX789012", barState: "TX", city: "Houston", state: "TX", zipCode: "77002",
		officeAddress: "456 Immigration Way", officePhone: "(713) 555-0202", website: "https://garciaimlaw.com",
		bio:            "Dedicated immigration attorney helping families navigate complex immigration processes. Bilingual services available.",
		years:          12,
		lawSchool:      "University of Texas School of Law, JD",
		certifications: []string{"American Immigration Lawyers Association Member", "Board Certified in Immigration Law"},
		hourlyRate:     275, consultationFee: 100,
		categories: []models.CategoryKey{models.CategoryImmigration},
		languages:  []models.Language{models.LanguageEnglish, models.LanguageSpanish},
		rating:     4.9, consultations: 203,
	},
	{
		email: "david.chen@cryptolaw.com", firstName: "David", lastName: "Chen",
		barNumber: "NY345678", barState: "NY", city: "New York", state: "NY", zipCode: "10004",
		officeAddress: "789 Wall Street, 42nd Floor", officePhone: "(212) 555-0303", website: "https://chencryptolaw.com",
		bio:            "Cryptocurrency and blockchain compliance attorney advising startups, exchanges, and investors on SEC regulations and AML/KYC requirements.",
		years:          8,
		lawSchool:      "Columbia Law School, JD",
		certifications: []string{"Certified Bitcoin Professional"},
		hourlyRate:     500, consultationFee: 250,
		categories: []models.CategoryKey{models.CategoryCryptoCompliance},
		languages:  []models.Language{models.LanguageEnglish, models.LanguageMandarin, models.LanguageKorean},
		rating:     4.7, consultations: 89,
	},
	{
		email: "sarah.johnson@debthelp.com", firstName: "Sarah", lastName: "Johnson",
		barNumber: "FL456789", barState: "FL", city: "Miami", state: "FL", zipCode: "33101",
		officeAddress: "321 Consumer Protection Blvd", officePhone: "(305) 555-0404", website: "https://johnsonconsumerlaw.com",
		bio:            "Consumer rights advocate specializing in debt collection defense, credit repair, and bankruptcy.",
		years:          10,
		lawSchool:      "University of Florida Levin College of Law, JD",
		certifications: []string{"Certified Bankruptcy Specialist"},
		hourlyRate:     225, consultationFee: 0,
		categories: []models.CategoryKey{models.CategoryConsumerDebt},
		languages:  []models.Language{models.LanguageEnglish},
		rating:     4.6, consultations: 178,
	},
	{
		email: "robert.williams@estateplanning.com", firstName: "Robert", lastName: "Williams",
		barNumber: "IL567890", barState: "IL", city: "Chicago", state: "IL", zipCode: "60601",
		officeAddress: "555 Estate Planning Center", officePhone: "(312) 555-0505", website: "https://williamsestatlaw.com",
		bio:            "Estate planning and probate attorney with focus on wills, trusts, and wealth preservation.",
		years:          20,
		lawSchool:      "Northwestern Pritzker School of Law, JD",
		certifications: []string{"Board Certified Estate Planning & Probate Attorney", "Accredited Estate Planner"},
		hourlyRate:     400, consultationFee: 200,
		categories: []models.CategoryKey{models.CategoryWillsEstates},
		languages:  []models.Language{models.LanguageEnglish},
		rating:     4.9, consultations: 245,
	},
	{
		email: "jennifer.lee@housinglaw.com", firstName: "Jennifer", lastName: "Lee",
		barNumber: "WA678901", barState: "WA", city: "Seattle", state: "WA", zipCode: "98101",
		officeAddress: "888 Tenant Rights Avenue", officePhone: "(206) 555-0606", website: "https://leehousinglaw.com",
		bio:            "Tenant rights attorney protecting renters from illegal evictions. Experience with habitability issues and rent control matters.",
		years:          9,
		lawSchool:      "University of Washington School of Law, JD",
		certifications: []string{"National Housing Law Project Member"},
		hourlyRate:     250, consultationFee: 75,
		categories: []models.CategoryKey{models.CategoryHousingLandlord},
		languages:  []models.Language{models.LanguageEnglish, models.LanguageKorean},
		rating:     4.8, consultations: 134,
	},
	{
		email: "michael.brown@familylaw.com", firstName: "Michael", lastName: "Brown",
		barNumber: "MA234567", barState: "MA", city: "Boston", state: "MA", zipCode: "02101",
		officeAddress: "999 Family Court Plaza", officePhone: "(617) 555-0707", website: "https://brownfamilylaw.com",
		bio:            "Family law attorney specializing in high-net-worth divorce cases and complex custody arrangements.",
		years:          18,
		lawSchool:      "Harvard Law School, JD",
		certifications: []string{"Fellow of the American Academy of Matrimonial Lawyers", "Certified Family Law Mediator"},
		hourlyRate:     450, consultationFee: 200,
		categories: []models.CategoryKey{models.CategoryFamilyLaw, models.CategoryWillsEstates},
		languages:  []models.Language{models.LanguageEnglish, models.LanguageFrench},
		rating:     4.7, consultations: 198,
	},
	{
		email: "lisa.rodriguez@immigrationhelp.com", firstName: "Lisa", lastName: "Rodriguez",
		barNumber: "AZ890123", barState: "AZ", city: "Phoenix", state: "AZ", zipCode: "85001",
		officeAddress: "777 Immigration Services Center", officePhone: "(602) 555-0808", website: "https://rodriguezimmigration.com",
		bio:            "Immigration lawyer with focus on family-based immigration and DACA cases. Evening and weekend appointments available.",
		years:          7,
		lawSchool:      "Arizona State University Sandra Day O'Connor College of Law, JD",
		certifications: []string{"AILA Member", "Accredited Representative"},
		hourlyRate:     200, consultationFee: 50,
		categories: []models.CategoryKey{models.CategoryImmigration},
		languages:  []models.Language{models.LanguageEnglish, models.LanguageSpanish},
		rating:     4.9, consultations: 167,
	},
	{
		email: "james.kim@blockchainlaw.com", firstName: "James", lastName: "Kim",
		barNumber: "CA987654", barState: "CA", city: "San Francisco", state: "CA", zipCode: "94102",
		officeAddress: "1234 Blockchain Boulevard", officePhone: "(415) 555-0909", website: "https://kimblockchainlaw.com",
		bio:            "Cryptocurrency attorney advising on ICO compliance, exchange licensing, and digital asset regulations.",
		years:          6,
		lawSchool:      "Stanford Law School, JD",
		certifications: []string{"Blockchain Council Certified Expert"},
		hourlyRate:     475, consultationFee: 225,
		categories: []models.CategoryKey{models.CategoryCryptoCompliance},
		languages:  []models.Language{models.LanguageEnglish, models.LanguageKorean},
		rating:     4.6, consultations: 72,
	},
	{
		email: "patricia.davis@debtrelief.com", firstName: "Patricia", lastName: "Davis",
		barNumber: "GA345678", barState: "GA", city: "Atlanta", state: "GA", zipCode: "30301",
		officeAddress: "456 Financial Freedom Way", officePhone: "(404) 555-1010", website: "https://davisconsumerlaw.com",
		bio:            "Consumer debt attorney with expertise in bankruptcy filings, debt settlement negotiations, and stopping creditor harassment.",
		years:          11,
		lawSchool:      "Emory University School of Law, JD",
		certifications: []string{"NACA Member"},
		hourlyRate:     235, consultationFee: 0,
		categories: []models.CategoryKey{models.CategoryConsumerDebt},
		languages:  []models.Language{models.LanguageEnglish},
		rating:     4.8, consultations: 211,
	},
}
