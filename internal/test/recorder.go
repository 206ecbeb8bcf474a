package test

import (
	"encoding/json"
	"net/http/httptest"
)

// JSONResponseRecorder 将响应体反序列化为 T
type JSONResponseRecorder[T any] struct {
	*httptest.ResponseRecorder
}

func NewJSONResponseRecorder[T any]() JSONResponseRecorder[T] {
	return JSONResponseRecorder[T]{
		ResponseRecorder: httptest.NewRecorder(),
	}
}

// MustScan 反序列化失败直接 panic，只在测试中使用
func (r JSONResponseRecorder[T]) MustScan() T {
	var t T
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		panic(err)
	}
	return t
}
