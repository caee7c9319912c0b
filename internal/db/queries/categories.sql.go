package queries

import (
	"context"
)

const listCategories = `
SELECT id, type
FROM categories
ORDER BY id
`

func (q *Queries) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.db.Query(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Category
	for rows.Next() {
		var i Category
		if err := rows.Scan(&i.ID, &i.Type); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getCategory = `
SELECT id, type
FROM categories
WHERE id = $1
`

func (q *Queries) GetCategory(ctx context.Context, id int32) (Category, error) {
	row := q.db.QueryRow(ctx, getCategory, id)
	var i Category
	err := row.Scan(&i.ID, &i.Type)
	return i, err
}

const insertCategory = `
INSERT INTO categories (type)
VALUES ($1)
RETURNING id, type
`

func (q *Queries) InsertCategory(ctx context.Context, typ string) (Category, error) {
	row := q.db.QueryRow(ctx, insertCategory, typ)
	var i Category
	err := row.Scan(&i.ID, &i.Type)
	return i, err
}
