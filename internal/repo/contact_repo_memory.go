package repo

import (
	"slices"
	"sync"

	"phonebook/internal/core/metrics"
	"phonebook/internal/domain"
	"phonebook/pkg/utils"
)

// ContactStore 内存联系人仓库：唯一持有集合，读接口一律返回副本
type ContactStore struct {
	mu       sync.RWMutex
	index    map[string]int
	contacts []domain.Contact

	newID     func() string
	normPhone func(string) string
}

var _ domain.ContactRepository = (*ContactStore)(nil)

type Option func(*ContactStore)

// WithIDGen 替换 id 生成器（测试用）
func WithIDGen(gen func() string) Option {
	return func(s *ContactStore) { s.newID = gen }
}

// WithPhoneSanitizer 入库前对号码做额外清洗（在 trim 之后）
func WithPhoneSanitizer(fn func(string) string) Option {
	return func(s *ContactStore) { s.normPhone = fn }
}

func NewContactStore(opts ...Option) *ContactStore {
	s := &ContactStore{
		index: make(map[string]int),
		newID: utils.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ContactStore) normalizePhone(v string) string {
	v = utils.Trim(v)
	if s.normPhone != nil {
		v = s.normPhone(v)
	}
	return v
}

func (s *ContactStore) Add(in domain.ContactInput) domain.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := domain.Contact{
		Name:   utils.Trim(in.Name.String()),
		Phone:  s.normalizePhone(in.Phone.String()),
		Email:  utils.Trim(in.Email.String()),
		Gender: domain.ParseGender(in.Gender.String()),
	}
retry:
	c.ID = s.newID()
	if _, loaded := s.index[c.ID]; loaded || c.ID == "" {
		goto retry
	}
	s.index[c.ID] = len(s.contacts)
	s.contacts = append(s.contacts, c)

	metrics.StoreOp("add", true)
	metrics.SetContacts(len(s.contacts))
	return c
}

func (s *ContactStore) Update(id string, in domain.ContactInput) (domain.Contact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		metrics.StoreOp("update", false)
		return domain.Contact{}, false
	}
	c := &s.contacts[i]
	if v, ok := in.Name.Get(); ok {
		c.Name = utils.Trim(v)
	}
	if v, ok := in.Phone.Get(); ok {
		c.Phone = s.normalizePhone(v)
	}
	if v, ok := in.Email.Get(); ok {
		c.Email = utils.Trim(v)
	}
	if v, ok := in.Gender.Get(); ok {
		c.Gender = domain.ParseGender(v)
	}

	metrics.StoreOp("update", true)
	return *c, true
}

func (s *ContactStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		metrics.StoreOp("remove", false)
		return false
	}
	delete(s.index, id)
	s.contacts = slices.Delete(s.contacts, i, i+1)
	// 后移的记录下标减一
	for j := i; j < len(s.contacts); j++ {
		s.index[s.contacts[j].ID] = j
	}

	metrics.StoreOp("remove", true)
	metrics.SetContacts(len(s.contacts))
	return true
}

func (s *ContactStore) FindByID(id string) (domain.Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return domain.Contact{}, false
	}
	return s.contacts[i], true
}

func (s *ContactStore) GetAll() []domain.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Contact{}, s.contacts...)
}

func (s *ContactStore) IsEmpty() bool { return s.Len() == 0 }

func (s *ContactStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contacts)
}

func (s *ContactStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = nil
	s.index = make(map[string]int)
	metrics.SetContacts(0)
}
