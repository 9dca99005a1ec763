package users

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userModel "schoolinfo_backend/internals/features/users/model"
)

type UserSeed struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("[WARNING] seed file %s: %v", filePath, err)
		return
	}
	var inputs []UserSeed
	if err := json.Unmarshal(raw, &inputs); err != nil {
		log.Printf("[WARNING] seed file %s: %v", filePath, err)
		return
	}

	for _, data := range inputs {
		var existing userModel.UserModel
		if err := db.Where("user_username = ?", data.Username).First(&existing).Error; err == nil {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("[WARNING] seed user %q: %v", data.Username, err)
			continue
		}
		row := userModel.UserModel{
			UserUsername: data.Username,
			UserEmail:    data.Email,
			UserPassword: string(hash),
			UserRole:     data.Role,
		}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("[WARNING] seed user %q: %v", data.Username, err)
		}
	}
}
