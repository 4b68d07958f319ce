package article_test

import (
	"context"

	"agency-articles/internal/domain/entity"
)

/* ───────── stub repository ───────── */

type stubRepo struct {
	articles []*entity.Article
	nextID   int64
	err      error

	calls   int
	created *entity.Article
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Article, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.articles, nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	for _, a := range s.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) (int64, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	s.nextID++
	a.ID = s.nextID
	s.created = a
	s.articles = append(s.articles, a)
	return a.ID, nil
}
