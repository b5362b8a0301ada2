package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"search-funnel/domain/repositories"
)

type FunnelRepositoryImpl struct {
	db *gorm.DB
}

func NewFunnelRepository(db *gorm.DB) repositories.FunnelRepository {
	return &FunnelRepositoryImpl{db: db}
}

func (r *FunnelRepositoryImpl) SaveBundle(ctx context.Context, bundle *repositories.FunnelBundle) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(bundle.Blog).Error; err != nil {
			return &repositories.SaveError{Step: "blog", Err: err}
		}

		for i, sb := range bundle.Searches {
			wr := i + 1
			if sb.Search.WR != nil {
				wr = *sb.Search.WR
			}

			sb.Search.BlogID = bundle.Blog.ID
			if err := tx.Omit(clause.Associations).Create(sb.Search).Error; err != nil {
				return &repositories.SaveError{Step: "related_search", WR: wr, Err: err}
			}

			for pos, result := range sb.WebResults {
				result.RelatedSearchID = sb.Search.ID
				if err := tx.Create(result).Error; err != nil {
					return &repositories.SaveError{Step: "web_result", WR: wr, Position: pos + 1, Err: err}
				}
			}

			if sb.PreLanding != nil {
				sb.PreLanding.RelatedSearchID = sb.Search.ID
				if err := tx.Create(sb.PreLanding).Error; err != nil {
					return &repositories.SaveError{Step: "pre_landing", WR: wr, Err: err}
				}
			}
		}
		return nil
	})
}

func (r *FunnelRepositoryImpl) FindIncompleteUnits(ctx context.Context) ([]repositories.UnitIssue, error) {
	var issues []repositories.UnitIssue
	err := r.db.WithContext(ctx).Raw(`
		SELECT b.id AS blog_id, b.title AS title,
			COUNT(rs.id) AS search_count,
			COUNT(DISTINCT rs.wr) AS distinct_wr,
			COUNT(rs.id) FILTER (WHERE rs.wr IS NULL OR rs.wr NOT BETWEEN 1 AND 4) AS out_of_range
		FROM blogs b
		LEFT JOIN related_searches rs ON rs.blog_id = b.id
		GROUP BY b.id, b.title
		HAVING COUNT(rs.id) <> 4
			OR COUNT(DISTINCT rs.wr) <> 4
			OR COUNT(rs.id) FILTER (WHERE rs.wr IS NULL OR rs.wr NOT BETWEEN 1 AND 4) > 0
		ORDER BY b.created_at DESC`).Scan(&issues).Error
	return issues, err
}

func (r *FunnelRepositoryImpl) CountOrphans(ctx context.Context) (*repositories.OrphanReport, error) {
	report := &repositories.OrphanReport{}

	queries := []struct {
		sql    string
		target *int64
	}{
		{`SELECT COUNT(*) FROM related_searches rs WHERE NOT EXISTS (SELECT 1 FROM blogs b WHERE b.id = rs.blog_id)`, &report.RelatedSearches},
		{`SELECT COUNT(*) FROM web_results w WHERE NOT EXISTS (SELECT 1 FROM related_searches rs WHERE rs.id = w.related_search_id)`, &report.WebResults},
		{`SELECT COUNT(*) FROM pre_landing_config p WHERE NOT EXISTS (SELECT 1 FROM related_searches rs WHERE rs.id = p.related_search_id)`, &report.PreLandings},
	}

	for _, q := range queries {
		if err := r.db.WithContext(ctx).Raw(q.sql).Scan(q.target).Error; err != nil {
			return nil, err
		}
	}
	return report, nil
}
