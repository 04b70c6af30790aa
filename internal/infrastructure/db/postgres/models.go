package postgres

import "github.com/ghiblihub/catalog-api/internal/core/domain"

type roleRecord struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (roleRecord) TableName() string { return "roles" }

func (r roleRecord) toDomain() *domain.Role {
	return &domain.Role{ID: r.ID, Name: r.Name}
}

type userRecord struct {
	ID       int64      `gorm:"primaryKey"`
	Username string     `gorm:"uniqueIndex;not null"`
	Email    string     `gorm:"uniqueIndex;not null"`
	Password string     `gorm:"column:password;not null"`
	RoleID   int64      `gorm:"not null;index"`
	Role     roleRecord `gorm:"foreignKey:RoleID"`
}

func (userRecord) TableName() string { return "users" }

func (u userRecord) toDomain() *domain.User {
	out := &domain.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.Password,
		RoleID:       u.RoleID,
	}
	if u.Role.ID != 0 {
		out.Role = u.Role.toDomain()
	}
	return out
}

func newUserRecord(u *domain.User) *userRecord {
	return &userRecord{
		Username: u.Username,
		Email:    u.Email,
		Password: u.PasswordHash,
		RoleID:   u.RoleID,
	}
}
