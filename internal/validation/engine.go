package validation

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"go.uber.org/zap"

	"phonebook/pkg/utils"
)

type Kind string

const (
	KindRequired Kind = "required"
	KindPattern  Kind = "pattern"
	KindEmail    Kind = "email"
	KindCustom   Kind = "custom"
)

// 默认提示文案
const (
	MsgRequired = "This field is required."
	MsgInvalid  = "Please provide a valid value."
	MsgEmail    = "Email address is invalid."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Rule 按字段名注册的自定义规则：Sanitize 在 trim 之后、校验之前执行
type Rule struct {
	Name     string
	Message  string
	Sanitize func(string) string
	Check    func(string) bool
}

// PhoneDigits 号码只保留数字后必须恰好 n 位
func PhoneDigits(n int) Rule {
	return Rule{
		Name:     "phone_digits",
		Message:  fmt.Sprintf("Phone number must be exactly %d digits.", n),
		Sanitize: utils.SanitizeDigits,
		Check:    func(v string) bool { return len(v) == n },
	}
}

type FieldResult struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

type Result struct {
	Valid  bool          `json:"valid"`
	Focus  string        `json:"focus,omitempty"` // 第一个不通过的字段
	Fields []FieldResult `json:"fields,omitempty"`
}

// Errors 字段名 -> 消息
func (r Result) Errors() map[string]string {
	out := make(map[string]string, len(r.Fields))
	for _, f := range r.Fields {
		out[f.Field] = f.Message
	}
	return out
}

type Engine struct {
	log      *zap.Logger
	rules    map[string]Rule
	patterns sync.Map // pattern -> *regexp.Regexp（编译失败存 nil）
	onFail   func(form, field string, kind Kind)
}

type Option func(*Engine)

func WithRule(field string, r Rule) Option {
	return func(e *Engine) { e.rules[field] = r }
}

// WithFailureHook 每个不通过的字段回调一次（用于打点）
func WithFailureHook(fn func(form, field string, kind Kind)) Option {
	return func(e *Engine) { e.onFail = fn }
}

func NewEngine(l *zap.Logger, opts ...Option) *Engine {
	if l == nil {
		l = zap.NewNop()
	}
	e := &Engine{log: l, rules: map[string]Rule{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate 依次校验必填字段，原地写回规范化后的值并标注错误
func (e *Engine) Validate(form *Form) Result {
	res := Result{Valid: true}
	if form == nil {
		return res
	}
	for _, fd := range form.Fields {
		if !fd.Required {
			continue
		}
		kind, msg, ok := e.checkField(fd)
		if ok {
			continue
		}
		fd.Error = msg
		res.Valid = false
		if res.Focus == "" {
			res.Focus = fd.Name
		}
		res.Fields = append(res.Fields, FieldResult{Field: fd.Name, Kind: kind, Message: msg})
		if e.onFail != nil {
			e.onFail(form.Name, fd.Name, kind)
		}
	}
	return res
}

// checkField 短路检查链，只返回第一个失败项
func (e *Engine) checkField(fd *Field) (Kind, string, bool) {
	fd.Error = ""

	fd.Value = strings.TrimSpace(fd.Value)

	rule, hasRule := e.rules[fd.Name]
	if hasRule && rule.Sanitize != nil {
		fd.Value = rule.Sanitize(fd.Value)
	}

	if fd.Value == "" {
		return KindRequired, MsgRequired, false
	}

	if fd.Pattern != "" {
		if re := e.compile(fd.Pattern); re != nil && !re.MatchString(fd.Value) {
			msg := fd.Title
			if msg == "" {
				msg = MsgInvalid
			}
			return KindPattern, msg, false
		}
	}

	if fd.Type == TypeEmail && !emailPattern.MatchString(fd.Value) {
		return KindEmail, MsgEmail, false
	}

	if hasRule && rule.Check != nil && !rule.Check(fd.Value) {
		msg := rule.Message
		if msg == "" {
			msg = MsgInvalid
		}
		return KindCustom, msg, false
	}
	return "", "", true
}

// compile 缓存编译结果；非法 pattern 只告警，视为通过
func (e *Engine) compile(pattern string) *regexp.Regexp {
	if v, ok := e.patterns.Load(pattern); ok {
		return v.(*regexp.Regexp)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		e.log.Warn("invalid pattern attribute", zap.String("pattern", pattern), zap.Error(err))
		re = nil
	}
	e.patterns.Store(pattern, re)
	return re
}

// Reset 清空所有值（回到默认值）和错误标注
func (e *Engine) Reset(form *Form) {
	if form == nil {
		return
	}
	for _, fd := range form.Fields {
		fd.Value = fd.Default
		fd.Error = ""
	}
}
