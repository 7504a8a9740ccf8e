package service

import (
	"errors"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"phonebook/internal/domain"
	"phonebook/internal/feature/contact"
	"phonebook/internal/validation"
)

var ErrNotFound = errors.New("contact not found")

// ValidationError 表单未通过校验，携带逐字段结果
type ValidationError struct {
	Result validation.Result
}

func (e *ValidationError) Error() string { return "validation failed on " + e.Result.Focus }

type Order string

const (
	OrderName      Order = "name"
	OrderInsertion Order = "insertion"
)

// ContactService 表单 -> 校验 -> 仓库
type ContactService struct {
	repo   domain.ContactRepository
	engine *validation.Engine
	log    *zap.Logger
	lang   language.Tag
}

func NewContactService(repo domain.ContactRepository, engine *validation.Engine, l *zap.Logger, locale string) *ContactService {
	if l == nil {
		l = zap.NewNop()
	}
	return &ContactService{repo: repo, engine: engine, log: l, lang: language.Make(locale)}
}

func (s *ContactService) Create(in domain.ContactInput) (domain.Contact, error) {
	f := contact.NewAddForm()
	contact.Apply(f, in)
	if res := s.engine.Validate(f); !res.Valid {
		return domain.Contact{}, &ValidationError{Result: res}
	}
	c := s.repo.Add(contact.Collect(f, nil))
	s.log.Debug("contact added", zap.String("id", c.ID))
	return c, nil
}

// Edit 先确认存在，再用已存记录预填表单、覆盖提交项后校验；只更新提交过的字段
func (s *ContactService) Edit(id string, in domain.ContactInput) (domain.Contact, error) {
	cur, ok := s.repo.FindByID(id)
	if !ok {
		return domain.Contact{}, ErrNotFound
	}
	f := contact.NewEditForm()
	contact.FillEdit(f, cur)
	contact.Apply(f, in)
	if res := s.engine.Validate(f); !res.Valid {
		return domain.Contact{}, &ValidationError{Result: res}
	}
	c, ok := s.repo.Update(id, contact.Collect(f, &in))
	if !ok {
		return domain.Contact{}, ErrNotFound
	}
	s.log.Debug("contact updated", zap.String("id", id))
	return c, nil
}

func (s *ContactService) Delete(id string) bool {
	removed := s.repo.Remove(id)
	if removed {
		s.log.Debug("contact removed", zap.String("id", id))
	}
	return removed
}

func (s *ContactService) Get(id string) (domain.Contact, bool) { return s.repo.FindByID(id) }

// List 默认按姓名排序（按 locale 排序规则），排序只作用于副本
func (s *ContactService) List(order Order) []domain.Contact {
	all := s.repo.GetAll()
	if order == OrderInsertion {
		return all
	}
	col := collate.New(s.lang, collate.IgnoreCase)
	slices.SortStableFunc(all, func(a, b domain.Contact) int {
		return col.CompareString(a.Name, b.Name)
	})
	return all
}

// BlankForm 返回重置后的空白表单
func (s *ContactService) BlankForm(name string) (*validation.Form, bool) {
	f, ok := contact.NewForm(name)
	if !ok {
		return nil, false
	}
	s.engine.Reset(f)
	return f, true
}

type Stats struct {
	Count int  `json:"count"`
	Empty bool `json:"empty"`
}

func (s *ContactService) Stats() Stats {
	return Stats{Count: s.repo.Len(), Empty: s.repo.IsEmpty()}
}

// Clear 清空通讯录，返回清掉的条数
func (s *ContactService) Clear() int {
	n := s.repo.Len()
	s.repo.Clear()
	s.log.Info("contacts cleared", zap.Int("count", n))
	return n
}
