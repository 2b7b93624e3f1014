package infra

import (
	"fmt"
	"os"
	"path"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
	_ "github.com/mattn/go-sqlite3"

	"github.com/brian-dev01/WDD-Server/domain/model"
)

type DataBase struct {
	db *gorm.DB
}

func NewDataBase() (*DataBase, error) {
	var db *gorm.DB
	var err error
	if os.Getenv("DB_DRIVER") == "mysql" {
		db, err = gorm.Open("mysql", mysqlDSN())
	} else {
		dbpath := "./db/wdd_server.db"
		if os.Getenv("DB_PATH") != "" {
			dbpath = os.Getenv("DB_PATH")
		}
		if !path.IsAbs(dbpath) {
			dbpath = path.Join(os.Getenv("PWD"), dbpath)
		}
		db, err = gorm.Open("sqlite3", dbpath)
	}
	if err != nil {
		return nil, err
	}
	db.AutoMigrate(&model.Inquiry{})
	return &DataBase{db: db}, nil
}

func mysqlDSN() string {
	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "3306"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		host,
		port,
		os.Getenv("DB_NAME"),
	)
}

func (d *DataBase) SaveInquiry(inquiry *model.Inquiry) error {
	return d.db.Create(inquiry).Error
}

func (d *DataBase) GetInquiries() ([]model.Inquiry, error) {
	var inquiries []model.Inquiry
	err := d.db.Order("created_at desc").Find(&inquiries).Error
	return inquiries, err
}

func (d *DataBase) DeleteInquiry(id string) error {
	res := d.db.Where("id = ?", id).Delete(&model.Inquiry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("inquiry not found: id=%s", id)
	}
	return nil
}
