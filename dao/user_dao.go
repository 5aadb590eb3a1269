package dao

import (
	"github.com/aumvipul/notes-sharing-website/model"

	"gorm.io/gorm"
)

type UserDAO struct {
	db *gorm.DB
}

// NewUserDAO 创建一个新的 UserDAO 实例
func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// WithTx returns a DAO bound to the given transaction.
func (dao *UserDAO) WithTx(tx *gorm.DB) *UserDAO {
	return &UserDAO{db: tx}
}

// CreateUser 创建新用户
func (dao *UserDAO) CreateUser(user *model.User) error {
	return dao.db.Create(user).Error
}

// FindByEmail 根据邮箱查询用户
func (dao *UserDAO) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := dao.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID 根据 ID 获取用户
func (dao *UserDAO) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := dao.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListAll returns every user, oldest first.
func (dao *UserDAO) ListAll() ([]model.User, error) {
	var users []model.User
	err := dao.db.Order("id asc").Find(&users).Error
	return users, err
}

// Count returns the total number of users.
func (dao *UserDAO) Count() (int64, error) {
	var n int64
	err := dao.db.Model(&model.User{}).Count(&n).Error
	return n, err
}

// Delete removes the user row only; cascading is the caller's business.
func (dao *UserDAO) Delete(id uint) error {
	return dao.db.Delete(&model.User{}, id).Error
}
