package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"phonebook/internal/domain"
	"phonebook/internal/feature/contact"
	"phonebook/internal/repo"
	"phonebook/internal/validation"
)

type ContactServiceSuite struct {
	suite.Suite
	store *repo.ContactStore
	svc   *ContactService
}

func (s *ContactServiceSuite) SetupTest() {
	s.store = repo.NewContactStore()
	engine := validation.NewEngine(nil, validation.WithRule(contact.FieldPhone, validation.PhoneDigits(11)))
	s.svc = NewContactService(s.store, engine, nil, "en")
}

func TestContactServiceSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceSuite))
}

func validInput() domain.ContactInput {
	return domain.ContactInput{
		Name:   domain.Some(" Ann Lee "),
		Phone:  domain.Some("+1 (555) 010-0100"),
		Email:  domain.Some(" ann@x.com"),
		Gender: domain.Some("Female"),
	}
}

func (s *ContactServiceSuite) TestCreate() {
	s.Run("valid form is normalized and stored", func() {
		c, err := s.svc.Create(validInput())
		s.Require().NoError(err)
		s.Equal("Ann Lee", c.Name)
		s.Equal("15550100100", c.Phone)
		s.Equal("ann@x.com", c.Email)
		s.Equal(domain.GenderFemale, c.Gender)

		found, ok := s.svc.Get(c.ID)
		s.Require().True(ok)
		s.Equal(c, found)
	})

	s.Run("invalid form is rejected without touching the store", func() {
		before := s.store.Len()
		in := validInput()
		in.Phone = domain.Some("(555) 12")
		in.Email = domain.Some("a@b")

		_, err := s.svc.Create(in)
		var verr *ValidationError
		s.Require().ErrorAs(err, &verr)
		s.Equal("phone", verr.Result.Focus)
		s.Equal(map[string]string{
			"phone": "Phone number must be exactly 11 digits.",
			"email": validation.MsgEmail,
		}, verr.Result.Errors())
		s.Equal(before, s.store.Len())
	})

	s.Run("missing gender defaults to Male", func() {
		in := validInput()
		in.Gender = domain.Opt{}
		c, err := s.svc.Create(in)
		s.Require().NoError(err)
		s.Equal(domain.GenderMale, c.Gender)
	})
}

func (s *ContactServiceSuite) TestEdit() {
	s.Run("unknown id", func() {
		_, err := s.svc.Edit("missing", validInput())
		s.ErrorIs(err, ErrNotFound)
	})

	s.Run("only submitted fields change", func() {
		c, err := s.svc.Create(validInput())
		s.Require().NoError(err)

		updated, err := s.svc.Edit(c.ID, domain.ContactInput{Email: domain.Some("  ann@y.org ")})
		s.Require().NoError(err)
		s.Equal("ann@y.org", updated.Email)
		s.Equal(c.Name, updated.Name)
		s.Equal(c.Phone, updated.Phone)
		s.Equal(c.Gender, updated.Gender)
	})

	s.Run("blanking a required field is rejected", func() {
		c, err := s.svc.Create(validInput())
		s.Require().NoError(err)

		_, err = s.svc.Edit(c.ID, domain.ContactInput{Name: domain.Some("  ")})
		var verr *ValidationError
		s.Require().ErrorAs(err, &verr)
		s.Equal("name", verr.Result.Focus)

		found, _ := s.svc.Get(c.ID)
		s.Equal("Ann Lee", found.Name)
	})
}

func (s *ContactServiceSuite) TestDeleteAndList() {
	for _, n := range []string{"Zed", "bob", "Amy"} {
		in := validInput()
		in.Name = domain.Some(n)
		_, err := s.svc.Create(in)
		s.Require().NoError(err)
	}

	names := func(cs []domain.Contact) []string {
		out := make([]string, 0, len(cs))
		for _, c := range cs {
			out = append(out, c.Name)
		}
		return out
	}
	s.Equal([]string{"Amy", "bob", "Zed"}, names(s.svc.List(OrderName)))
	s.Equal([]string{"Zed", "bob", "Amy"}, names(s.svc.List(OrderInsertion)))

	first := s.svc.List(OrderInsertion)[0]
	s.True(s.svc.Delete(first.ID))
	s.False(s.svc.Delete(first.ID))
	s.Equal([]string{"bob", "Amy"}, names(s.svc.List(OrderInsertion)))
}

func (s *ContactServiceSuite) TestBlankForm() {
	f, ok := s.svc.BlankForm(contact.FormAdd)
	s.Require().True(ok)
	s.Empty(f.Value(contact.FieldName))
	s.Equal("Male", f.Value(contact.FieldGender))
	s.Empty(f.Errors())

	_, ok = s.svc.BlankForm("unknown")
	s.False(ok)
}

func (s *ContactServiceSuite) TestStatsAndClear() {
	s.Equal(Stats{Count: 0, Empty: true}, s.svc.Stats())

	for i := 0; i < 3; i++ {
		_, err := s.svc.Create(validInput())
		s.Require().NoError(err)
	}
	s.Equal(Stats{Count: 3, Empty: false}, s.svc.Stats())

	s.Equal(3, s.svc.Clear())
	s.Equal(Stats{Count: 0, Empty: true}, s.svc.Stats())
	s.Empty(s.svc.List(OrderName))
}
