package contact

import (
	"phonebook/internal/domain"
	"phonebook/internal/validation"
)

const (
	FormAdd  = "add"
	FormEdit = "edit"
)

// 字段名与 domain.ContactInput 的 json key 一致
const (
	FieldID     = "id"
	FieldName   = "name"
	FieldPhone  = "phone"
	FieldEmail  = "email"
	FieldGender = "gender"
)

func fields() []*validation.Field {
	return []*validation.Field{
		{Name: FieldName, Required: true},
		{Name: FieldPhone, Required: true, Type: "tel"},
		{Name: FieldEmail, Required: true, Type: validation.TypeEmail},
		{Name: FieldGender, Default: string(domain.GenderMale), Value: string(domain.GenderMale)},
	}
}

func NewAddForm() *validation.Form {
	return &validation.Form{Name: FormAdd, Fields: fields()}
}

func NewEditForm() *validation.Form {
	fs := append([]*validation.Field{{Name: FieldID}}, fields()...)
	return &validation.Form{Name: FormEdit, Fields: fs}
}

// NewForm 按名字取空白表单
func NewForm(name string) (*validation.Form, bool) {
	switch name {
	case FormAdd:
		return NewAddForm(), true
	case FormEdit:
		return NewEditForm(), true
	default:
		return nil, false
	}
}

// FillEdit 用已存记录预填编辑表单
func FillEdit(f *validation.Form, c domain.Contact) {
	f.Set(FieldID, c.ID)
	f.Set(FieldName, c.Name)
	f.Set(FieldPhone, c.Phone)
	f.Set(FieldEmail, c.Email)
	f.Set(FieldGender, string(c.Gender))
}

// Apply 把提交的字段写入表单，未提交的保持原值
func Apply(f *validation.Form, in domain.ContactInput) {
	for name, opt := range inputFields(&in) {
		if v, ok := opt.Get(); ok {
			f.Set(name, v)
		}
	}
}

// Collect 从表单取回规范化后的值；only 非空时只取其中出现过的字段
func Collect(f *validation.Form, only *domain.ContactInput) domain.ContactInput {
	var out domain.ContactInput
	for name, dst := range inputFields(&out) {
		if only != nil && !inputFields(only)[name].Present() {
			continue
		}
		*dst = domain.Some(f.Value(name))
	}
	return out
}

func inputFields(in *domain.ContactInput) map[string]*domain.Opt {
	return map[string]*domain.Opt{
		FieldName:   &in.Name,
		FieldPhone:  &in.Phone,
		FieldEmail:  &in.Email,
		FieldGender: &in.Gender,
	}
}
