package services

import (
	"strings"
	"sync"
	"time"

	"lexhub_backend/internal/models"
	"lexhub_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// directTx выполняет fn без транзакции: фейковые репозитории не трогают БД
func directTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return fn(db)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// --- users ---

type fakeUserRepo struct {
	mu       sync.Mutex
	users    map[string]*models.User
	clients  []models.ClientProfile
	touched  int
	createFn func(u *models.User) error
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	if r.createFn != nil {
		if err := r.createFn(user); err != nil {
			return err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uuid.NewString()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateRole(_ *gorm.DB, userID string, role models.UserRole) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) TouchLastLogin(_ *gorm.DB, userID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touched++
	if u, ok := r.users[userID]; ok {
		u.LastLoginAt = &at
	}
	return nil
}

func (r *fakeUserRepo) CreateClientProfile(_ *gorm.DB, profile *models.ClientProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile.ID = uuid.NewString()
	r.clients = append(r.clients, *profile)
	return nil
}

// --- lawyers ---

type fakeLawyerRepo struct {
	mu         sync.Mutex
	profiles   map[string]*models.LawyerProfile
	categories []models.LawyerCategory
	languages  []models.LawyerLanguage
	counts     map[string]repositories.LawyerCounts

	searchResult []models.LawyerProfile
	searchTotal  int64
	lastCriteria repositories.LawyerSearchCriteria
}

func newFakeLawyerRepo(profiles ...*models.LawyerProfile) *fakeLawyerRepo {
	r := &fakeLawyerRepo{
		profiles: map[string]*models.LawyerProfile{},
		counts:   map[string]repositories.LawyerCounts{},
	}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *fakeLawyerRepo) Create(_ *gorm.DB, profile *models.LawyerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile.ID = uuid.NewString()
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeLawyerRepo) ExistsByUserID(_ *gorm.DB, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLawyerRepo) ExistsByBarNumber(_ *gorm.DB, barNumber string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.BarNumber == barNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLawyerRepo) AttachCategories(_ *gorm.DB, links []models.LawyerCategory) error {
	r.categories = append(r.categories, links...)
	return nil
}

func (r *fakeLawyerRepo) AttachLanguages(_ *gorm.DB, links []models.LawyerLanguage) error {
	r.languages = append(r.languages, links...)
	return nil
}

func (r *fakeLawyerRepo) FindByID(_ *gorm.DB, id string) (*models.LawyerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repositories.ErrLawyerNotFound
}

func (r *fakeLawyerRepo) FindDetailByID(db *gorm.DB, id string) (*models.LawyerProfile, error) {
	return r.FindByID(db, id)
}

func (r *fakeLawyerRepo) FindPending(_ *gorm.DB) ([]models.LawyerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.LawyerProfile
	for _, p := range r.profiles {
		if p.IsPending() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeLawyerRepo) Search(_ *gorm.DB, criteria repositories.LawyerSearchCriteria) ([]models.LawyerProfile, int64, error) {
	r.lastCriteria = criteria
	return r.searchResult, r.searchTotal, nil
}

func (r *fakeLawyerRepo) CountsByLawyerIDs(_ *gorm.DB, ids []string) (map[string]repositories.LawyerCounts, error) {
	out := make(map[string]repositories.LawyerCounts, len(ids))
	for _, id := range ids {
		if c, ok := r.counts[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (r *fakeLawyerRepo) TransitionFromPending(_ *gorm.DB, id string, decision repositories.LawyerDecision) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok || p.Status != models.LawyerStatusPending {
		return false, nil
	}
	p.Status = decision.Status
	p.VerificationNotes = decision.Notes
	p.ApprovedAt = decision.ApprovedAt
	return true, nil
}

// --- categories ---

type fakeCategoryRepo struct {
	categories []models.Category
	counts     map[string]int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	r := &fakeCategoryRepo{counts: map[string]int64{}}
	for i, key := range models.CategoryKeys() {
		r.categories = append(r.categories, models.Category{
			BaseModel: models.BaseModel{ID: "cat-" + strings.ToLower(string(key))},
			Key:       key,
			NameEn:    string(key),
			Order:     i + 1,
			IsActive:  true,
		})
	}
	return r
}

func (r *fakeCategoryRepo) FindActive(_ *gorm.DB) ([]models.Category, error) {
	var out []models.Category
	for _, c := range r.categories {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindByKeys(_ *gorm.DB, keys []string) ([]models.Category, error) {
	var out []models.Category
	for _, c := range r.categories {
		for _, k := range keys {
			if string(c.Key) == k {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) CountApprovedLawyers(_ *gorm.DB) (map[string]int64, error) {
	return r.counts, nil
}

func (r *fakeCategoryRepo) UpsertByKey(_ *gorm.DB, category *models.Category) (bool, error) {
	for _, c := range r.categories {
		if c.Key == category.Key {
			return false, nil
		}
	}
	r.categories = append(r.categories, *category)
	return true, nil
}

// --- reviews ---

type fakeReviewRepo struct {
	byLawyer map[string][]models.Review
	lastN    int
}

func (r *fakeReviewRepo) RecentByLawyerIDs(_ *gorm.DB, ids []string, perLawyer int) (map[string][]models.Review, error) {
	r.lastN = perLawyer
	out := map[string][]models.Review{}
	for _, id := range ids {
		if list, ok := r.byLawyer[id]; ok {
			if len(list) > perLawyer {
				list = list[:perLawyer]
			}
			out[id] = list
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) RecentWithClient(_ *gorm.DB, lawyerID string, limit int) ([]models.Review, error) {
	r.lastN = limit
	list := r.byLawyer[lawyerID]
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}
