package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	v1 "github.com/aumvipul/notes-sharing-website/api/v1"
	"github.com/aumvipul/notes-sharing-website/config"
	"github.com/aumvipul/notes-sharing-website/dao"
	"github.com/aumvipul/notes-sharing-website/internal/storage"
	myvalidator "github.com/aumvipul/notes-sharing-website/internal/validator"
	"github.com/aumvipul/notes-sharing-website/model"
	"github.com/aumvipul/notes-sharing-website/service"
)

func main() {
	// 初始化配置
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../"
	}
	config.InitConfig(configPath)
	config.InitRedis()

	// 初始化数据库
	db, err := gorm.Open(mysql.Open(config.GlobalConfig.MySQL.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		panic(err)
	}

	// 自动迁移
	if err := db.AutoMigrate(&model.User{}, &model.Note{}, &model.Like{}); err != nil {
		panic(err)
	}

	// 上传目录
	files, err := storage.NewStore(config.GlobalConfig.Upload.Dir, config.GlobalConfig.Upload.AllowedExts)
	if err != nil {
		panic(err)
	}

	// 初始化 DAO 和 Service
	userDAO := dao.NewUserDAO(db)
	noteDAO := dao.NewNoteDAO(db)
	likeDAO := dao.NewLikeDAO(db)
	userService := service.NewUserService(userDAO, config.RedisClient)
	noteService := service.NewNoteService(noteDAO, likeDAO, files)
	adminService := service.NewAdminService(db, userDAO, noteDAO, likeDAO, files)

	// 默认管理员账号（幂等）
	if err := userService.EnsureAdmin(config.GlobalConfig.Admin); err != nil {
		panic(err)
	}

	// 注册自定义校验器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("notblank", myvalidator.NotBlank); err != nil {
			panic(err)
		}
	}

	// 初始化路由并启动服务
	r := v1.NewRouter(userService, noteService, adminService, config.RedisClient)
	if err := r.Run(config.GlobalConfig.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
