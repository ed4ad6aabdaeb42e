// Package models содержит доменные сущности photo-feed.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта;
// bson-теги задают раскладку документов в MongoDB.
package models

import "time"

// User — каноническая запись пользователя (коллекция users).
// Единственный источник истины для полей профиля: снапшоты в постах и
// комментариях — лишь eventually consistent копии проекции User.
//   - Username уникален (unique-индекс).
//   - Following/Followers симметричны: b ∈ a.Following ⇔ a ∈ b.Followers.
//   - UpdatedAt выставляется при любой записи в документ (профиль, счётчики, подписки).
//   - Version увеличивается на сервере БД ($inc) при любой записи в документ;
//     по нему, а не по часам, упорядочиваются снапшоты.
type User struct {
	ID          string    `bson:"_id" json:"id"`
	Username    string    `bson:"username" json:"username"`
	Name        string    `bson:"name" json:"name"`
	PhotoURL    string    `bson:"photoURL" json:"photoURL"`
	Bio         string    `bson:"bio" json:"bio"`
	Website     string    `bson:"website" json:"website"`
	Location    string    `bson:"location" json:"location"`
	IsAdmin     bool      `bson:"isAdmin" json:"isAdmin"`
	Verified    bool      `bson:"verified" json:"verified"`
	Private     bool      `bson:"private" json:"private"`
	Following   []string  `bson:"following" json:"following"`
	Followers   []string  `bson:"followers" json:"followers"`
	TotalPosts  int64     `bson:"totalPosts" json:"totalPosts"`
	TotalPhotos int64     `bson:"totalPhotos" json:"totalPhotos"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
	Version     int64     `bson:"version" json:"version"`
}

// ProfileSnapshot — денормализованная копия части полей User,
// встраиваемая по значению в Post и Comment (поле user).
// Version — версия User, с которой снят снапшот.
type ProfileSnapshot struct {
	UserID      string    `bson:"userId" json:"userId"`
	Name        string    `bson:"name" json:"name"`
	Username    string    `bson:"username" json:"username"`
	PhotoURL    string    `bson:"photoURL" json:"photoURL"`
	IsAdmin     bool      `bson:"isAdmin" json:"isAdmin"`
	Verified    bool      `bson:"verified" json:"verified"`
	Following   []string  `bson:"following" json:"following"`
	Followers   []string  `bson:"followers" json:"followers"`
	TotalPosts  int64     `bson:"totalPosts" json:"totalPosts"`
	TotalPhotos int64     `bson:"totalPhotos" json:"totalPhotos"`
	Private     bool      `bson:"private" json:"private"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
	Version     int64     `bson:"version" json:"version"`
}
