package postgres

import (
	"context"
	"fmt"
	"time"

	"agency-articles/internal/domain/entity"
	"agency-articles/internal/observability/metrics"
	"agency-articles/internal/repository"
)

// ArticleSequence generates article ids.
const ArticleSequence = "article_id_seq"

type ArticleRepo struct {
	db Querier
}

func NewArticleRepo(db Querier) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

const articleColumns = `id_article, name, description,
       to_char(publication_date, 'YYYY-MM-DD') AS publication_date,
       author, system_agency_id`

func (repo *ArticleRepo) List(ctx context.Context) (articles []*entity.Article, err error) {
	defer observe("list_articles", time.Now(), &err)

	const query = `
SELECT ` + articleColumns + `
FROM article
ORDER BY id_article`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, classify("List", err)
	}
	defer func() { _ = rows.Close() }()

	articles = make([]*entity.Article, 0, 64)
	for rows.Next() {
		var article entity.Article
		if err := rows.Scan(&article.ID, &article.Name, &article.Description,
			&article.PublicationDate, &article.Author, &article.SystemAgencyID); err != nil {
			return nil, classify("List: Scan", err)
		}
		articles = append(articles, &article)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("List", err)
	}
	return articles, nil
}

// Get returns nil, nil when no article has the given id.
func (repo *ArticleRepo) Get(ctx context.Context, id int64) (article *entity.Article, err error) {
	defer observe("get_article", time.Now(), &err)

	const query = `
SELECT ` + articleColumns + `
FROM article
WHERE id_article = $1
LIMIT 1`
	rows, err := repo.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, classify("Get", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, classify("Get", err)
		}
		return nil, nil
	}
	var a entity.Article
	if err := rows.Scan(&a.ID, &a.Name, &a.Description,
		&a.PublicationDate, &a.Author, &a.SystemAgencyID); err != nil {
		return nil, classify("Get: Scan", err)
	}
	return &a, nil
}

// Create inserts the article with an id drawn from ArticleSequence and
// returns that id. The publication date is parsed by the database.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) (id int64, err error) {
	defer observe("insert_article", time.Now(), &err)

	const query = `
INSERT INTO article (id_article, name, description, publication_date, author, system_agency_id)
VALUES (nextval('` + ArticleSequence + `'), $1, $2, CAST($3::text AS DATE), $4, $5)
RETURNING id_article`
	rows, err := repo.db.QueryContext(ctx, query,
		article.Name,
		article.Description,
		article.PublicationDate,
		article.Author,
		article.SystemAgencyID,
	)
	if err != nil {
		return 0, classify("Create", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, classify("Create", err)
		}
		return 0, fmt.Errorf("Create: insert returned no id")
	}
	if err := rows.Scan(&id); err != nil {
		return 0, classify("Create: Scan", err)
	}
	if err := rows.Err(); err != nil {
		return 0, classify("Create", err)
	}
	article.ID = id
	metrics.RecordArticleInserted()
	return id, nil
}

func observe(op string, start time.Time, err *error) {
	metrics.RecordDBQuery(op, time.Since(start), *err)
}
