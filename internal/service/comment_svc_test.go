package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
)

func TestCommentService_PostRejectsEmptyContent(t *testing.T) {
	svc := NewCommentService(nil, nil)
	author := model.User{ID: "u1", DisplayName: "Tester"}

	for _, content := range []string{"", "   ", "\n\t"} {
		if _, err := svc.Post(context.Background(), "borobudur", author, content); !errors.Is(err, ErrEmptyContent) {
			t.Errorf("Post(%q) err = %v, want ErrEmptyContent", content, err)
		}
	}
}

func TestCommentService_UpdateRejectsEmptyContent(t *testing.T) {
	svc := NewCommentService(nil, nil)

	for _, content := range []string{"", "   "} {
		if err := svc.Update(context.Background(), "c1", "u1", content); !errors.Is(err, ErrEmptyContent) {
			t.Errorf("Update(%q) err = %v, want ErrEmptyContent", content, err)
		}
	}
}
