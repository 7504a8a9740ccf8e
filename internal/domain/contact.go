package domain

import "encoding/json"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// ParseGender 严格白名单：只有 "Female" 映射为 Female，其余一律 Male
func ParseGender(v string) Gender {
	if v == string(GenderFemale) {
		return GenderFemale
	}
	return GenderMale
}

type Contact struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Gender Gender `json:"gender"`
}

// Opt 区分“未提供”和“提供了空值”（部分更新按是否出现判断，而不是真假值）
type Opt struct {
	v  string
	ok bool
}

func Some(v string) Opt { return Opt{v: v, ok: true} }

func (o Opt) Get() (string, bool) { return o.v, o.ok }
func (o Opt) Present() bool       { return o.ok }
func (o Opt) String() string      { return o.v }

// UnmarshalJSON 出现即视为提供；非字符串值（数字/布尔/对象/null）按空串吸收
func (o *Opt) UnmarshalJSON(b []byte) error {
	o.ok = true
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		o.v = ""
		return nil
	}
	o.v = s
	return nil
}

func (o Opt) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.v)
}

// ContactInput 原始表单数据，任何字段都可能缺失
type ContactInput struct {
	Name   Opt `json:"name"`
	Phone  Opt `json:"phone"`
	Email  Opt `json:"email"`
	Gender Opt `json:"gender"`
}

type ContactRepository interface {
	Add(in ContactInput) Contact
	Update(id string, in ContactInput) (Contact, bool)
	Remove(id string) bool
	FindByID(id string) (Contact, bool)
	GetAll() []Contact
	IsEmpty() bool
	Len() int
	Clear()
}
