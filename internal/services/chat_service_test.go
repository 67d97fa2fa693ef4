package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"estatehub/internal/broadcast"
	"estatehub/internal/domain/chat"
	estate_errors "estatehub/pkg/errors"

	"github.com/stretchr/testify/require"
)

type fakeChatRepo struct {
	chats      map[string]chat.Chat
	messages   map[string][]chat.Message
	nextMsgID  uint
	createErr  error
	messageErr error
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		chats:     make(map[string]chat.Chat),
		messages:  make(map[string][]chat.Message),
		nextMsgID: 1,
	}
}

func (r *fakeChatRepo) Create(_ context.Context, c *chat.Chat) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.chats[c.ID] = *c
	return nil
}

func (r *fakeChatRepo) GetByID(_ context.Context, id string) (chat.Chat, error) {
	c, ok := r.chats[id]
	if !ok {
		return chat.Chat{}, estate_errors.ErrNotFound
	}
	return c, nil
}

func (r *fakeChatRepo) ListForUser(_ context.Context, userID uint) ([]chat.Chat, error) {
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

func (r *fakeChatRepo) Messages(_ context.Context, chatID string, page, limit int) ([]chat.Message, error) {
	msgs := append([]chat.Message(nil), r.messages[chatID]...)
	// newest first
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

func (r *fakeChatRepo) CreateMessage(_ context.Context, m *chat.Message) error {
	if r.messageErr != nil {
		return r.messageErr
	}
	m.ID = r.nextMsgID
	r.nextMsgID++
	m.CreatedAt = time.Now()
	r.messages[m.ChatID] = append(r.messages[m.ChatID], *m)
	return nil
}

func (r *fakeChatRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.chats[id]; !ok {
		return estate_errors.ErrNotFound
	}
	delete(r.chats, id)
	delete(r.messages, id)
	return nil
}

// recordingGateway captures emissions together with how many messages the
// repository held at emit time, which pins down the persist-then-broadcast
// ordering.
type recordingGateway struct {
	repo  *fakeChatRepo
	rooms []string
	envs  []broadcast.Envelope

	persistedAtEmit []int
}

func (g *recordingGateway) EmitToRoom(_ context.Context, room string, env broadcast.Envelope) {
	g.rooms = append(g.rooms, room)
	g.envs = append(g.envs, env)
	g.persistedAtEmit = append(g.persistedAtEmit, len(g.repo.messages[env.ChatID]))
}

func bootstrapChatService() (*ChatService, *fakeChatRepo, *recordingGateway) {
	repo := newFakeChatRepo()
	gateway := &recordingGateway{repo: repo}
	return NewChatService(repo, gateway, nil), repo, gateway
}

func TestCreateChatRequiresTwoDistinctUsers(t *testing.T) {
	t.Parallel()

	svc, _, _ := bootstrapChatService()

	_, err := svc.CreateChat(context.Background(), []uint{1})
	require.ErrorIs(t, err, estate_errors.ErrInvalidInput)

	_, err = svc.CreateChat(context.Background(), []uint{1, 1, 1})
	require.ErrorIs(t, err, estate_errors.ErrInvalidInput)
}

func TestCreateChatTwoUsers(t *testing.T) {
	t.Parallel()

	svc, repo, _ := bootstrapChatService()

	created, err := svc.CreateChat(context.Background(), []uint{1, 2})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(created.ID, chat.IDPrefix))
	require.Len(t, created.Users, 2)
	require.Equal(t, uint(1), created.Users[0].UserID)
	require.Equal(t, uint(2), created.Users[1].UserID)
	require.Contains(t, repo.chats, created.ID)
}

func TestCreateChatDeduplicatesMembers(t *testing.T) {
	t.Parallel()

	svc, _, _ := bootstrapChatService()

	created, err := svc.CreateChat(context.Background(), []uint{3, 3, 4})
	require.NoError(t, err)
	require.Len(t, created.Users, 2)
}

func TestSendMessagePersistsThenBroadcasts(t *testing.T) {
	t.Parallel()

	svc, repo, gateway := bootstrapChatService()

	created, err := svc.CreateChat(context.Background(), []uint{7, 8})
	require.NoError(t, err)

	m, err := svc.SendMessage(context.Background(), created.ID, 7, "hello")
	require.NoError(t, err)
	require.NotZero(t, m.ID)
	require.Len(t, repo.messages[created.ID], 1)

	require.Equal(t, []string{created.ID}, gateway.rooms)
	require.Len(t, gateway.envs, 1)
	require.Equal(t, broadcast.EventGetMessage, gateway.envs[0].Event)
	require.Equal(t, created.ID, gateway.envs[0].ChatID)
	require.Equal(t, m, gateway.envs[0].Message)
	// the message row existed before the emission happened
	require.Equal(t, []int{1}, gateway.persistedAtEmit)
}

func TestSendMessageNoBroadcastOnPersistFailure(t *testing.T) {
	t.Parallel()

	svc, repo, gateway := bootstrapChatService()
	repo.messageErr = fmt.Errorf("connection reset")

	_, err := svc.SendMessage(context.Background(), "chat_abc123", 7, "hello")
	require.Error(t, err)
	require.Empty(t, gateway.envs)
}

func TestSendMessageValidation(t *testing.T) {
	t.Parallel()

	svc, _, gateway := bootstrapChatService()

	_, err := svc.SendMessage(context.Background(), "chat_abc123", 7, "   ")
	require.ErrorIs(t, err, estate_errors.ErrInvalidInput)

	_, err = svc.SendMessage(context.Background(), "chat_abc123", 0, "hello")
	require.ErrorIs(t, err, estate_errors.ErrInvalidInput)

	require.Empty(t, gateway.envs)
}

func TestGetMessagesPagination(t *testing.T) {
	t.Parallel()

	svc, _, _ := bootstrapChatService()

	created, err := svc.CreateChat(context.Background(), []uint{1, 2})
	require.NoError(t, err)

	for i := 1; i <= 45; i++ {
		_, err := svc.SendMessage(context.Background(), created.ID, 1, fmt.Sprintf("m%d", i))
		require.NoError(t, err)
	}

	page2, err := svc.GetMessages(context.Background(), created.ID, 2)
	require.NoError(t, err)
	require.Len(t, page2, MessagePageSize)
	// ranked 21..40 newest-first: m25 down to m6
	require.Equal(t, "m25", page2[0].Text)
	require.Equal(t, "m6", page2[len(page2)-1].Text)

	page3, err := svc.GetMessages(context.Background(), created.ID, 3)
	require.NoError(t, err)
	require.Len(t, page3, 5)
}

func TestGetMessagesUnknownChatIsEmpty(t *testing.T) {
	t.Parallel()

	svc, _, _ := bootstrapChatService()

	messages, err := svc.GetMessages(context.Background(), "chat_missing", 1)
	require.NoError(t, err)
	require.NotNil(t, messages)
	require.Empty(t, messages)
}

func TestDeleteChat(t *testing.T) {
	t.Parallel()

	svc, repo, _ := bootstrapChatService()

	created, err := svc.CreateChat(context.Background(), []uint{1, 2})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteChat(context.Background(), created.ID))
	require.NotContains(t, repo.chats, created.ID)

	err = svc.DeleteChat(context.Background(), created.ID)
	require.ErrorIs(t, err, estate_errors.ErrNotFound)
}
