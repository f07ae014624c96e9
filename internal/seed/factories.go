package seed

import (
	"fmt"
	"math/rand"
	"time"

	"campusnet/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var universities = []string{
	"Université Paris-Saclay",
	"Sorbonne Université",
	"Université de Lyon",
	"Université Grenoble Alpes",
	"Université de Bordeaux",
	"Université de Strasbourg",
}

var postTemplates = []struct {
	format string
	tags   []string
}{
	{"Quelqu'un a le polycopié du cours de %s ? 🙏", []string{"ressources", "cours"}},
	{"Comment vous révisez pour les partiels de %s ?", []string{"question", "partiels"}},
	{"Je partage mes notes de %s, dispo en commentaire !", []string{"ressources", "notes"}},
	{"Pourquoi le cours de %s est-il si difficile cette année ?", []string{"question"}},
	{"Groupe d'étude %s ce jeudi à la BU, qui vient ?", []string{"entraide"}},
	{"Super conférence sur %s aujourd'hui sur le campus 🎓", []string{"campus"}},
}

var subjects = []string{
	"maths", "physique", "chimie", "biologie", "informatique",
	"économie", "droit", "histoire", "sociologie", "statistiques",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample student account.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username:   gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:      gofakeit.Email(),
		FullName:   gofakeit.Name(),
		University: universities[f.rnd.Intn(len(universities))],
		IsVerified: f.rnd.Intn(4) == 0,
	}

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user.Password = string(hashedPassword)

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a campus-flavored post for the given user.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	tpl := postTemplates[f.rnd.Intn(len(postTemplates))]
	subject := subjects[f.rnd.Intn(len(subjects))]

	post := &models.Post{
		UserID:     user.ID,
		Content:    fmt.Sprintf(tpl.format, subject),
		University: user.University,
		Tags:       tpl.tags,
	}

	// realistic created_at spread over the last 30 days
	daysBack := f.rnd.Intn(30)
	hoursBack := f.rnd.Intn(24)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	if f.rnd.Intn(3) == 0 {
		post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID())
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment and bumps the post's counter, same
// as the live write path does.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	replies := []string{
		"Merci pour le partage !",
		"Je suis intéressé, tu peux m'envoyer ça ?",
		"Pareil chez nous 😅",
		"Bonne idée, je viens jeudi !",
		"Tu as regardé les annales ?",
	}
	comment := &models.Comment{
		PostID:  post.ID,
		UserID:  user.ID,
		Content: replies[f.rnd.Intn(len(replies))],
	}
	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("id = ?", post.ID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// AddEngagement sprinkles likes, comments and view interactions from
// random users over the post.
func (f *Factory) AddEngagement(post *models.Post, users []*models.User) error {
	for _, user := range users {
		if f.rnd.Intn(3) != 0 {
			continue
		}
		err := f.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error; err != nil {
				return err
			}
			return tx.Model(&models.Post{}).
				Where("id = ?", post.ID).
				UpdateColumn("likes", gorm.Expr("likes + 1")).Error
		})
		if err != nil {
			return err
		}
	}

	for _, user := range users {
		if f.rnd.Intn(5) == 0 {
			if _, err := f.CreateComment(user, post); err != nil {
				return err
			}
		}
		if f.rnd.Intn(2) == 0 {
			view := &models.Interaction{
				UserID:   user.ID,
				PostID:   post.ID,
				Type:     models.InteractionTypeView,
				Duration: f.rnd.Intn(120),
			}
			if err := f.db.Create(view).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
