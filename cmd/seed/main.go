package main

import (
	"flag"
	"log"
	"time"

	"taskhub/internal/config"
	"taskhub/internal/logger"
	"taskhub/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a development database with a demo team, one project and a
// handful of tasks. Safe to re-run: existing users are kept.
func main() {
	configFile := flag.String("config", "etc/config-dev.yaml", "config file")
	flag.Parse()

	logger.Init(config.LogConfig{Level: "info", Console: true})

	cfg := config.Load(*configFile)
	db, err := cfg.OpenGormDB()
	if err != nil {
		log.Fatal("db connect failed: ", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		log.Fatal("migrate failed: ", err)
	}

	alice := seedUser(db, "Alice", "alice@example.com", "password1")
	bob := seedUser(db, "Bob", "bob@example.com", "password1")

	var count int64
	db.Model(&model.Project{}).Where("name = ?", "Demo Project").Count(&count)
	if count > 0 {
		logger.Info("seed: demo project already present, nothing to do")
		return
	}

	project := model.Project{
		Name:    "Demo Project",
		Details: "Sandbox project created by the seed tool.",
	}
	if err := db.Create(&project).Error; err != nil {
		log.Fatal("seed project: ", err)
	}
	for _, u := range []*model.User{alice, bob} {
		a := model.ProjectAssignment{ProjectID: project.ID, UserID: u.ID, Role: "member"}
		if err := db.Create(&a).Error; err != nil {
			log.Fatal("seed assignment: ", err)
		}
	}

	tasks := []model.Task{
		{Title: "Set up CI", Description: "Pipeline for lint and tests", Status: model.StatusTodo,
			Priority: model.PriorityHigh, Type: model.TypeImprovement,
			Deadline: time.Now().AddDate(0, 0, 7), ProjectID: project.ID,
			AssignedToID: &alice.ID, CreatedByID: bob.ID},
		{Title: "Fix login redirect", Description: "Redirect loop after expired token", Status: model.StatusInProgress,
			Priority: model.PriorityMedium, Type: model.TypeBug,
			Deadline: time.Now().AddDate(0, 0, 3), ProjectID: project.ID,
			AssignedToID: &bob.ID, CreatedByID: alice.ID},
		{Title: "Kanban board", Description: "Drag and drop status columns", Status: model.StatusDone,
			Priority: model.PriorityLow, Type: model.TypeFeature,
			Deadline: time.Now().AddDate(0, 0, 14), ProjectID: project.ID,
			CreatedByID: alice.ID},
	}
	for i := range tasks {
		if err := db.Create(&tasks[i]).Error; err != nil {
			log.Fatal("seed task: ", err)
		}
	}

	logger.Info("seed done", "project", project.ID, "tasks", len(tasks))
}

func seedUser(db *gorm.DB, name, email, password string) *model.User {
	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return &existing
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("hash password: ", err)
	}
	u := model.User{Name: name, Email: email, Password: string(hash)}
	if err := db.Create(&u).Error; err != nil {
		log.Fatal("seed user ", email, ": ", err)
	}
	logger.Info("seed: user created", "email", email)
	return &u
}
