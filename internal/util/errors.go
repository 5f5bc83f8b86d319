package util

import "errors"

// ErrorKind 业务错误分类。调用方基于分类分支，禁止匹配错误文案。
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindAccessDenied
	KindConflict
	KindInvalidState
)

// DomainError 携带分类标签的业务错误
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NotFoundError(message string) error {
	return &DomainError{Kind: KindNotFound, Message: message}
}

func AccessDeniedError(message string) error {
	return &DomainError{Kind: KindAccessDenied, Message: message}
}

func ConflictError(message string) error {
	return &DomainError{Kind: KindConflict, Message: message}
}

func InvalidStateError(message string) error {
	return &DomainError{Kind: KindInvalidState, Message: message}
}

// KindOf 提取错误分类，非业务错误返回 KindUnknown
func KindOf(err error) ErrorKind {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindUnknown
}
