package repository

import (
	"context"
	"encoding/json"
	"errors"

	"aaai-platform/internal/domain/catalog"
	"aaai-platform/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogRepository is the Postgres-backed counterpart of the in-memory
// store, selected when DB_DSN is configured. Same contract: absence is
// (nil, nil), never an error.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// Courses

const courseColumns = `id, title, description, category, difficulty, color, icon,
	estimated_hours, price, weeks, modules, prerequisites, technologies`

func (r *CatalogRepository) GetAllCourses(ctx context.Context) ([]catalog.Course, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY seq`)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindQuery, "failed to list courses", err)
	}
	defer rows.Close()

	var out []catalog.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindQuery, "failed to iterate courses", err)
	}
	return out, nil
}

func (r *CatalogRepository) GetCourse(ctx context.Context, id string) (*catalog.Course, error) {
	rows := r.pool.QueryRow(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, id)
	c, err := scanCourse(rows)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *CatalogRepository) CreateCourse(ctx context.Context, course catalog.Course) (*catalog.Course, error) {
	modules, err := json.Marshal(course.Modules)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindScan, "failed to encode course modules", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO courses (id, title, description, category, difficulty, color, icon,
			estimated_hours, price, weeks, modules, prerequisites, technologies)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, description = EXCLUDED.description,
			category = EXCLUDED.category, difficulty = EXCLUDED.difficulty,
			color = EXCLUDED.color, icon = EXCLUDED.icon,
			estimated_hours = EXCLUDED.estimated_hours, price = EXCLUDED.price,
			weeks = EXCLUDED.weeks, modules = EXCLUDED.modules,
			prerequisites = EXCLUDED.prerequisites, technologies = EXCLUDED.technologies`,
		course.ID, course.Title, course.Description, course.Category, course.Difficulty,
		course.Color, course.Icon, course.EstimatedHours, course.Price, course.Weeks,
		modules, course.Prerequisites, course.Technologies)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindQuery, "failed to upsert course", err)
	}
	return &course, nil
}

func scanCourse(row pgx.Row) (*catalog.Course, error) {
	var c catalog.Course
	var modules []byte
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.Difficulty,
		&c.Color, &c.Icon, &c.EstimatedHours, &c.Price, &c.Weeks,
		&modules, &c.Prerequisites, &c.Technologies)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, infra.WrapRepoErr(infra.KindScan, "failed to scan course", err)
	}
	if len(modules) > 0 {
		if err := json.Unmarshal(modules, &c.Modules); err != nil {
			return nil, infra.WrapRepoErr(infra.KindScan, "failed to decode course modules", err)
		}
	}
	return &c, nil
}

// Projects

const projectColumns = `id, title, description, category, difficulty,
	technologies, features, download_url, image_url, github_url`

func (r *CatalogRepository) GetAllProjects(ctx context.Context) ([]catalog.Project, error) {
	return r.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY seq`)
}

func (r *CatalogRepository) GetProjectsByCategory(ctx context.Context, category string) ([]catalog.Project, error) {
	return r.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects WHERE category = $1 ORDER BY seq`, category)
}

func (r *CatalogRepository) queryProjects(ctx context.Context, sql string, args ...any) ([]catalog.Project, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindQuery, "failed to list projects", err)
	}
	defer rows.Close()

	projects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.Project, error) {
		var p catalog.Project
		err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Difficulty,
			&p.Technologies, &p.Features, &p.DownloadURL, &p.ImageURL, &p.GithubURL)
		return p, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindScan, "failed to scan projects", err)
	}
	return projects, nil
}

func (r *CatalogRepository) GetProject(ctx context.Context, id string) (*catalog.Project, error) {
	var p catalog.Project
	err := r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id).
		Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Difficulty,
			&p.Technologies, &p.Features, &p.DownloadURL, &p.ImageURL, &p.GithubURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(infra.KindQuery, "failed to find project", err)
	}
	return &p, nil
}

func (r *CatalogRepository) CreateProject(ctx context.Context, project catalog.Project) (*catalog.Project, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO projects (id, title, description, category, difficulty,
			technologies, features, download_url, image_url, github_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, description = EXCLUDED.description,
			category = EXCLUDED.category, difficulty = EXCLUDED.difficulty,
			technologies = EXCLUDED.technologies, features = EXCLUDED.features,
			download_url = EXCLUDED.download_url, image_url = EXCLUDED.image_url,
			github_url = EXCLUDED.github_url`,
		project.ID, project.Title, project.Description, project.Category, project.Difficulty,
		project.Technologies, project.Features, project.DownloadURL, project.ImageURL, project.GithubURL)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindQuery, "failed to upsert project", err)
	}
	return &project, nil
}

// Code labs

const codeLabColumns = `id, title, description, difficulty, category,
	instructions, starter_code, solution, hints, estimated_time`

func (r *CatalogRepository) GetAllCodeLabs(ctx context.Context) ([]catalog.CodeLab, error) {
	return r.queryCodeLabs(ctx, `SELECT `+codeLabColumns+` FROM code_labs ORDER BY seq`)
}

func (r *CatalogRepository) GetCodeLabsByDifficulty(ctx context.Context, difficulty string) ([]catalog.CodeLab, error) {
	return r.queryCodeLabs(ctx, `SELECT `+codeLabColumns+` FROM code_labs WHERE difficulty = $1 ORDER BY seq`, difficulty)
}

func (r *CatalogRepository) queryCodeLabs(ctx context.Context, sql string, args ...any) ([]catalog.CodeLab, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindQuery, "failed to list code labs", err)
	}
	defer rows.Close()

	labs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.CodeLab, error) {
		var l catalog.CodeLab
		err := row.Scan(&l.ID, &l.Title, &l.Description, &l.Difficulty, &l.Category,
			&l.Instructions, &l.StarterCode, &l.Solution, &l.Hints, &l.EstimatedTime)
		return l, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindScan, "failed to scan code labs", err)
	}
	return labs, nil
}

func (r *CatalogRepository) GetCodeLab(ctx context.Context, id string) (*catalog.CodeLab, error) {
	var l catalog.CodeLab
	err := r.pool.QueryRow(ctx, `SELECT `+codeLabColumns+` FROM code_labs WHERE id = $1`, id).
		Scan(&l.ID, &l.Title, &l.Description, &l.Difficulty, &l.Category,
			&l.Instructions, &l.StarterCode, &l.Solution, &l.Hints, &l.EstimatedTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(infra.KindQuery, "failed to find code lab", err)
	}
	return &l, nil
}

func (r *CatalogRepository) CreateCodeLab(ctx context.Context, lab catalog.CodeLab) (*catalog.CodeLab, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO code_labs (id, title, description, difficulty, category,
			instructions, starter_code, solution, hints, estimated_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, description = EXCLUDED.description,
			difficulty = EXCLUDED.difficulty, category = EXCLUDED.category,
			instructions = EXCLUDED.instructions, starter_code = EXCLUDED.starter_code,
			solution = EXCLUDED.solution, hints = EXCLUDED.hints,
			estimated_time = EXCLUDED.estimated_time`,
		lab.ID, lab.Title, lab.Description, lab.Difficulty, lab.Category,
		lab.Instructions, lab.StarterCode, lab.Solution, lab.Hints, lab.EstimatedTime)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindQuery, "failed to upsert code lab", err)
	}
	return &lab, nil
}

// Documentation

const docColumns = `id, title, content, category, tags, last_updated`

func (r *CatalogRepository) GetAllDocumentation(ctx context.Context) ([]catalog.Documentation, error) {
	return r.queryDocs(ctx, `SELECT `+docColumns+` FROM documentation ORDER BY seq`)
}

func (r *CatalogRepository) GetDocumentationByCategory(ctx context.Context, category string) ([]catalog.Documentation, error) {
	return r.queryDocs(ctx, `SELECT `+docColumns+` FROM documentation WHERE category = $1 ORDER BY seq`, category)
}

func (r *CatalogRepository) SearchDocumentation(ctx context.Context, query string) ([]catalog.Documentation, error) {
	pattern := "%" + query + "%"
	return r.queryDocs(ctx, `
		SELECT `+docColumns+` FROM documentation
		WHERE title ILIKE $1 OR content ILIKE $1
			OR EXISTS (SELECT 1 FROM unnest(tags) tag WHERE tag ILIKE $1)
		ORDER BY seq`, pattern)
}

func (r *CatalogRepository) queryDocs(ctx context.Context, sql string, args ...any) ([]catalog.Documentation, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindQuery, "failed to list documentation", err)
	}
	defer rows.Close()

	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.Documentation, error) {
		var d catalog.Documentation
		err := row.Scan(&d.ID, &d.Title, &d.Content, &d.Category, &d.Tags, &d.LastUpdated)
		return d, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindScan, "failed to scan documentation", err)
	}
	return docs, nil
}

func (r *CatalogRepository) GetDocumentation(ctx context.Context, id string) (*catalog.Documentation, error) {
	var d catalog.Documentation
	err := r.pool.QueryRow(ctx, `SELECT `+docColumns+` FROM documentation WHERE id = $1`, id).
		Scan(&d.ID, &d.Title, &d.Content, &d.Category, &d.Tags, &d.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(infra.KindQuery, "failed to find documentation", err)
	}
	return &d, nil
}

func (r *CatalogRepository) CreateDocumentation(ctx context.Context, doc catalog.Documentation) (*catalog.Documentation, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO documentation (id, title, content, category, tags, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, content = EXCLUDED.content,
			category = EXCLUDED.category, tags = EXCLUDED.tags,
			last_updated = EXCLUDED.last_updated`,
		doc.ID, doc.Title, doc.Content, doc.Category, doc.Tags, doc.LastUpdated)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindQuery, "failed to upsert documentation", err)
	}
	return &doc, nil
}

// User progress

const progressColumns = `id, user_id, course_id, module_id, completed, progress, last_accessed`

func (r *CatalogRepository) GetUserProgress(ctx context.Context, userID string) ([]catalog.UserProgress, error) {
	return r.queryProgress(ctx, `SELECT `+progressColumns+` FROM user_progress WHERE user_id = $1 ORDER BY last_accessed`, userID)
}

func (r *CatalogRepository) GetUserCourseProgress(ctx context.Context, userID, courseID string) ([]catalog.UserProgress, error) {
	return r.queryProgress(ctx, `SELECT `+progressColumns+` FROM user_progress WHERE user_id = $1 AND course_id = $2 ORDER BY last_accessed`, userID, courseID)
}

func (r *CatalogRepository) queryProgress(ctx context.Context, sql string, args ...any) ([]catalog.UserProgress, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindQuery, "failed to list user progress", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.UserProgress, error) {
		var p catalog.UserProgress
		err := row.Scan(&p.ID, &p.UserID, &p.CourseID, &p.ModuleID, &p.Completed, &p.Progress, &p.LastAccessed)
		return p, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindScan, "failed to scan user progress", err)
	}
	return entries, nil
}

func (r *CatalogRepository) UpsertUserProgress(ctx context.Context, entry catalog.UserProgress) (*catalog.UserProgress, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_progress (id, user_id, course_id, module_id, completed, progress, last_accessed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.UserID, entry.CourseID, entry.ModuleID, entry.Completed, entry.Progress, entry.LastAccessed)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindQuery, "failed to insert user progress", err)
	}
	return &entry, nil
}
