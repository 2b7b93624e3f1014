package infra

import (
	"time"

	"github.com/brian-dev01/WDD-Server/domain/model"
)

//go:generate go run go.uber.org/mock/mockgen -source=datastore.go -destination=datastore_mock.go -package=infra

type Datastore interface {
	// 問い合わせを保存する
	SaveInquiry(*model.Inquiry) error
	// すべての問い合わせを新しい順に取得する
	GetInquiries() ([]model.Inquiry, error)
	// 問い合わせを削除する。存在しない場合はエラーを返す
	DeleteInquiry(string) error
}

func timeNow() time.Time {
	return time.Now().UTC()
}
