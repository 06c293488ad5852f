package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckTodoID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"588935f5c668650dc77df581", true},
		{"000000000000000000000000", true},
		{"bad", false},
		{"", false},
		{"588935F5C668650DC77DF581", false},
		{"588935f5c668650dc77df58", false},
		{"588935f5c668650dc77df5811", false},
		{"588935f5c668650dc77df58g", false},
		{" 588935f5c668650dc77df581", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckTodoID(tt.id))
		})
	}
}

func TestTodo_Equal(t *testing.T) {
	a := &Todo{ID: "588935f5c668650dc77df581", Owner: "Sam"}
	b := &Todo{ID: "588935f5c668650dc77df581", Owner: "Someone else", Category: "chores"}
	c := &Todo{ID: "588935f5c668650dc77df582", Owner: "Sam"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	assert.True(t, (*Todo)(nil).Equal(nil))
}

func TestTodo_Field(t *testing.T) {
	todo := &Todo{ID: "1", Body: "b", Status: "true", Owner: "o", Category: "c"}

	for name, want := range map[string]string{
		"_id": "1", "id": "1", "body": "b", "status": "true", "owner": "o", "category": "c",
	} {
		got, ok := todo.Field(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
		assert.True(t, IsTodoField(name), name)
	}

	_, ok := todo.Field("age")
	assert.False(t, ok)
	assert.False(t, IsTodoField("age"))
	assert.False(t, IsTodoField("Owner"))
}
