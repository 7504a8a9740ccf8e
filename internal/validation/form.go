package validation

// Field 一个表单输入项；Error 是展示层读取的错误标注
type Field struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Default  string `json:"default,omitempty"`
	Required bool   `json:"required,omitempty"`
	Pattern  string `json:"pattern,omitempty"`
	Type     string `json:"type,omitempty"`  // "email" 等语义类型
	Title    string `json:"title,omitempty"` // pattern 不匹配时的提示
	Error    string `json:"error,omitempty"`
}

const TypeEmail = "email"

// Form 有序字段集合（顺序决定校验顺序和聚焦项）
type Form struct {
	Name   string   `json:"name"`
	Fields []*Field `json:"fields"`
}

func (f *Form) Field(name string) *Field {
	for _, fd := range f.Fields {
		if fd.Name == name {
			return fd
		}
	}
	return nil
}

// Set 按字段名写值，字段不存在时忽略
func (f *Form) Set(name, value string) {
	if fd := f.Field(name); fd != nil {
		fd.Value = value
	}
}

func (f *Form) Value(name string) string {
	if fd := f.Field(name); fd != nil {
		return fd.Value
	}
	return ""
}

// Errors 当前所有错误标注（字段名 -> 消息）
func (f *Form) Errors() map[string]string {
	out := map[string]string{}
	for _, fd := range f.Fields {
		if fd.Error != "" {
			out[fd.Name] = fd.Error
		}
	}
	return out
}
