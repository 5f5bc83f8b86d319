// 创建管理员账号脚本
//
// 平台自助注册只授予 PARTICIPANT 角色，首个管理员需要通过此脚本创建。
//
// 用法: go run scripts/create_admin.go -email admin@example.com -password <密码> -name "Admin"
package main

import (
	"errors"
	"flag"
	"log"

	"workshop_hub_backend/internal/config"
	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/repository"
	"workshop_hub_backend/pkg/database"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	email := flag.String("email", "", "管理员邮箱")
	password := flag.String("password", "", "管理员密码")
	name := flag.String("name", "Administrator", "管理员姓名")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: go run scripts/create_admin.go -email <email> -password <password> [-name <name>]")
	}
	if len(*password) < 8 {
		log.Fatal("password must be at least 8 characters")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)

	// 邮箱已存在时补授 ADMIN 角色而不是报错
	if existing, err := userRepo.FindByEmail(*email); err == nil {
		if existing.Roles.Has(model.RoleAdmin) {
			log.Printf("user %s is already an admin", *email)
			return
		}
		existing.Roles = append(existing.Roles, model.RoleAdmin)
		if err := userRepo.Update(existing); err != nil {
			log.Fatalf("failed to grant admin role: %v", err)
		}
		log.Printf("granted ADMIN role to existing user %s", *email)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("failed to look up user: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := &model.User{
		FullName: *name,
		Email:    *email,
		Password: string(hashed),
		Roles:    model.RoleList{model.RoleAdmin},
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("admin user %s created (id=%d)", *email, admin.ID)
}
