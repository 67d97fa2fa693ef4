package handler

import (
	"context"
	"time"

	"estatehub/internal/broadcast"
	"estatehub/internal/domain/chat"
	"estatehub/internal/domain/property"
	"estatehub/internal/domain/user"
	"estatehub/internal/services"
	estate_errors "estatehub/pkg/errors"

	"github.com/gin-gonic/gin"
)

// In-memory repositories backing the real services, so the tests cover the
// full handler -> service -> error-mapping path without a database.

type memPropertyRepo struct {
	properties map[uint]property.Property
	nextID     uint
	imagesGone []uint
}

func newMemPropertyRepo() *memPropertyRepo {
	return &memPropertyRepo{properties: make(map[uint]property.Property), nextID: 1}
}

func (r *memPropertyRepo) Create(_ context.Context, p *property.Property) error {
	p.ID = r.nextID
	r.nextID++
	for i := range p.Images {
		p.Images[i].ID = uint(i + 1)
		p.Images[i].PropertyID = p.ID
	}
	r.properties[p.ID] = *p
	return nil
}

func (r *memPropertyRepo) GetByID(_ context.Context, id uint) (property.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return property.Property{}, estate_errors.ErrNotFound
	}
	return p, nil
}

func (r *memPropertyRepo) Search(_ context.Context, f property.SearchFilter) ([]property.Property, error) {
	var out []property.Property
	for _, p := range r.properties {
		if f.PriceMin != nil && p.Price < *f.PriceMin {
			continue
		}
		if f.PriceMax != nil && p.Price > *f.PriceMax {
			continue
		}
		if f.PropertyType != nil && p.PropertyType != *f.PropertyType {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memPropertyRepo) Update(_ context.Context, id uint, u property.Updates) (property.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return property.Property{}, estate_errors.ErrNotFound
	}
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	r.properties[id] = p
	return p, nil
}

func (r *memPropertyRepo) DeleteImages(_ context.Context, propertyID uint) error {
	r.imagesGone = append(r.imagesGone, propertyID)
	return nil
}

func (r *memPropertyRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.properties[id]; !ok {
		return estate_errors.ErrNotFound
	}
	delete(r.properties, id)
	return nil
}

type memUserRepo struct {
	users map[uint]user.User
}

func (r *memUserRepo) GetByID(_ context.Context, id uint) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, estate_errors.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

type memChatRepo struct {
	chats    map[string]chat.Chat
	messages map[string][]chat.Message
	nextID   uint
}

func newMemChatRepo() *memChatRepo {
	return &memChatRepo{
		chats:    make(map[string]chat.Chat),
		messages: make(map[string][]chat.Message),
		nextID:   1,
	}
}

func (r *memChatRepo) Create(_ context.Context, c *chat.Chat) error {
	r.chats[c.ID] = *c
	return nil
}

func (r *memChatRepo) GetByID(_ context.Context, id string) (chat.Chat, error) {
	c, ok := r.chats[id]
	if !ok {
		return chat.Chat{}, estate_errors.ErrNotFound
	}
	return c, nil
}

func (r *memChatRepo) ListForUser(_ context.Context, userID uint) ([]chat.Chat, error) {
	var out []chat.Chat
	for _, c := range r.chats {
		for _, member := range c.Users {
			if member.UserID == userID {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (r *memChatRepo) Messages(_ context.Context, chatID string, page, limit int) ([]chat.Message, error) {
	msgs := append([]chat.Message(nil), r.messages[chatID]...)
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	offset := (page - 1) * limit
	if offset >= len(msgs) {
		return nil, nil
	}
	end := offset + limit
	if end > len(msgs) {
		end = len(msgs)
	}
	return msgs[offset:end], nil
}

func (r *memChatRepo) CreateMessage(_ context.Context, m *chat.Message) error {
	m.ID = r.nextID
	r.nextID++
	m.CreatedAt = time.Now()
	r.messages[m.ChatID] = append(r.messages[m.ChatID], *m)
	return nil
}

func (r *memChatRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.chats[id]; !ok {
		return estate_errors.ErrNotFound
	}
	delete(r.chats, id)
	delete(r.messages, id)
	return nil
}

type captureGateway struct {
	envs []broadcast.Envelope
}

func (g *captureGateway) EmitToRoom(_ context.Context, _ string, env broadcast.Envelope) {
	g.envs = append(g.envs, env)
}

type testEnv struct {
	router       *gin.Engine
	propertyRepo *memPropertyRepo
	chatRepo     *memChatRepo
	gateway      *captureGateway
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	propertyRepo := newMemPropertyRepo()
	chatRepo := newMemChatRepo()
	userRepo := &memUserRepo{users: map[uint]user.User{
		7: {ID: 7, FirstName: "Ada"},
		8: {ID: 8, FirstName: "Grace"},
	}}
	gateway := &captureGateway{}

	propertyHandler := NewPropertyHandler(services.NewPropertyService(propertyRepo, userRepo, nil))
	chatHandler := NewChatHandler(services.NewChatService(chatRepo, gateway, nil))

	router := gin.New()
	api := router.Group("/api/v1")
	api.POST("/list-property", propertyHandler.List)
	api.GET("/find-properties", propertyHandler.Find)
	api.PUT("/property/:id", propertyHandler.Update)
	api.GET("/findPropertyById/:id", propertyHandler.GetByID)
	api.DELETE("/deletePropertyById/:id", propertyHandler.Delete)
	api.POST("/chats", chatHandler.Create)
	api.GET("/chats", chatHandler.ListForUser)
	api.GET("/chats/:id", chatHandler.Messages)
	api.POST("/chats/:id/messages", chatHandler.SendMessage)
	api.DELETE("/chats/:id", chatHandler.Delete)

	return &testEnv{
		router:       router,
		propertyRepo: propertyRepo,
		chatRepo:     chatRepo,
		gateway:      gateway,
	}
}
