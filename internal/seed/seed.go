// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"strings"

	"campusnet/internal/middleware"
	"campusnet/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Root user and welcome post, recreated by Reset. Every fresh install
// has at least this account so anonymous writes have an owner.
const (
	RootUserID    uint = 1
	WelcomePostID uint = 1

	rootUsername   = "etudiant_demo"
	rootEmail      = "demo@campus.fr"
	rootFullName   = "Étudiant Démo"
	rootUniversity = "Université Paris-Saclay"
	rootPassword   = "campus123"

	welcomeContent = "Bienvenue sur Campus Network ! 🎓"
)

// ResetStats reports the table sizes after a reset.
type ResetStats struct {
	Users    int64 `json:"users"`
	Posts    int64 `json:"posts"`
	Comments int64 `json:"comments"`
}

// EnsureRootUser guarantees the demo account with id 1 exists.
func EnsureRootUser(db *gorm.DB) error {
	var existing models.User
	err := db.First(&existing, RootUserID).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rootPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	root := &models.User{
		ID:         RootUserID,
		Username:   rootUsername,
		Email:      rootEmail,
		Password:   string(hash),
		FullName:   rootFullName,
		University: rootUniversity,
		IsVerified: true,
	}
	if err := db.Create(root).Error; err != nil {
		return err
	}
	return fixSequence(db, "users")
}

// ensureWelcomePost guarantees the pinned welcome post with id 1 exists.
func ensureWelcomePost(db *gorm.DB) error {
	var existing models.Post
	err := db.First(&existing, WelcomePostID).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	post := &models.Post{
		ID:            WelcomePostID,
		UserID:        RootUserID,
		Content:       welcomeContent,
		University:    rootUniversity,
		Likes:         15,
		CommentsCount: 3,
		Shares:        0,
		Tags:          []string{"bienvenue"},
	}
	if err := db.Create(post).Error; err != nil {
		return err
	}
	return fixSequence(db, "posts")
}

// fixSequence realigns the PostgreSQL identity sequence after inserting
// rows with explicit IDs. A no-op on other dialects.
func fixSequence(db *gorm.DB, table string) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	stmt := fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%s', 'id'), GREATEST((SELECT COALESCE(MAX(id), 1) FROM %s), 1))",
		table, table,
	)
	return db.Exec(stmt).Error
}

// Reset wipes all social data and restores the bootstrap state: the
// root user and the single welcome post.
func Reset(db *gorm.DB) (*ResetStats, error) {
	tables := []any{
		&models.Like{},
		&models.Comment{},
		&models.Interaction{},
		&models.Post{},
	}
	for _, table := range tables {
		if err := db.Where("1 = 1").Delete(table).Error; err != nil {
			return nil, err
		}
	}
	if err := db.Where("id > ?", RootUserID).Delete(&models.User{}).Error; err != nil {
		return nil, err
	}

	if err := EnsureRootUser(db); err != nil {
		return nil, err
	}
	if err := ensureWelcomePost(db); err != nil {
		return nil, err
	}

	stats := &ResetStats{}
	if err := db.Model(&models.User{}).Count(&stats.Users).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Post{}).Count(&stats.Posts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Comment{}).Count(&stats.Comments).Error; err != nil {
		return nil, err
	}

	middleware.Logger.Info("database reset", "users", stats.Users, "posts", stats.Posts)
	return stats, nil
}

// Seed populates the database with demo data.
func Seed(db *gorm.DB, opts Options) error {
	middleware.Logger.Info("seeding database", "users", opts.NumUsers, "posts", opts.NumPosts)

	if opts.ShouldClean {
		if _, err := Reset(db); err != nil {
			return fmt.Errorf("failed to reset before seeding: %w", err)
		}
	} else {
		if err := EnsureRootUser(db); err != nil {
			return err
		}
		if err := ensureWelcomePost(db); err != nil {
			return err
		}
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		u, err := f.CreateUser()
		if err != nil {
			// Random usernames can occasionally collide, skip and move on
			if strings.Contains(strings.ToLower(err.Error()), "unique") {
				continue
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, u)
	}
	if len(users) == 0 {
		return fmt.Errorf("no users created")
	}

	for i := 0; i < opts.NumPosts; i++ {
		author := users[i%len(users)]
		post, err := f.CreatePost(author)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		if err := f.AddEngagement(post, users); err != nil {
			return fmt.Errorf("failed to add engagement: %w", err)
		}
	}

	middleware.Logger.Info("seeding complete", "users", len(users), "posts", opts.NumPosts)
	return nil
}
