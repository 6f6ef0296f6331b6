package memory

import (
	"sync"
	"time"

	"campusai-be/internal/entity"
)

// Store is the in-process alternative to the relational backend. Ids come
// from monotonic counters; every record is copied in and out so callers
// never share memory with the store.
type Store struct {
	mu sync.RWMutex

	sessions       map[int]entity.ChatSession
	sessionByToken map[string]int
	messages       []entity.ChatMessage
	users          map[int]entity.User
	userByName     map[string]int
	faqs           []entity.Faq
	contacts       []entity.ContactMessage
	widgets        []entity.DashboardWidget

	nextSessionId int
	nextMessageId int
	nextUserId    int
	nextContactId int
	nextFaqId     int
	nextWidgetId  int
}

func NewStore() *Store {
	return &Store{
		sessions:       make(map[int]entity.ChatSession),
		sessionByToken: make(map[string]int),
		users:          make(map[int]entity.User),
		userByName:     make(map[string]int),
		nextSessionId:  1,
		nextMessageId:  1,
		nextUserId:     1,
		nextContactId:  1,
		nextFaqId:      1,
		nextWidgetId:   1,
	}
}

func (s *Store) insertSession(session *entity.ChatSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session.Id = s.nextSessionId
	s.nextSessionId++
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	s.sessions[session.Id] = *session
	s.sessionByToken[session.SessionToken] = session.Id
}

func (s *Store) insertMessage(message *entity.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	message.Id = s.nextMessageId
	s.nextMessageId++
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	s.messages = append(s.messages, *message)
}

func (s *Store) insertUser(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.Id = s.nextUserId
	s.nextUserId++
	s.users[user.Id] = *user
	s.userByName[user.Username] = user.Id
}

func (s *Store) insertFaq(faq *entity.Faq) {
	s.mu.Lock()
	defer s.mu.Unlock()
	faq.Id = s.nextFaqId
	s.nextFaqId++
	s.faqs = append(s.faqs, *faq)
}

func (s *Store) insertContact(message *entity.ContactMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	message.Id = s.nextContactId
	s.nextContactId++
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	s.contacts = append(s.contacts, *message)
}

func (s *Store) insertWidget(widget *entity.DashboardWidget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	widget.Id = s.nextWidgetId
	s.nextWidgetId++
	s.widgets = append(s.widgets, *widget)
}
