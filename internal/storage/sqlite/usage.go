package sqlite

import "github.com/arkadas6fh8wehf/levao-ai-the-creative-engine/internal/storage/models"

// UpdateDailyUsage upserts daily usage data
func (s *Storage) UpdateDailyUsage(usage *models.DailyUsage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStorageClosed
	}
	if usage.Date == "" || usage.Operation == "" {
		return ErrInvalidInput
	}

	_, err := s.db.Exec(`
		INSERT INTO usage_daily (date, operation, model, request_count,
			prompt_tokens, completion_tokens, total_tokens, error_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date, operation, model) DO UPDATE SET
			request_count = request_count + excluded.request_count,
			prompt_tokens = prompt_tokens + excluded.prompt_tokens,
			completion_tokens = completion_tokens + excluded.completion_tokens,
			total_tokens = total_tokens + excluded.total_tokens,
			error_count = error_count + excluded.error_count
	`, usage.Date, usage.Operation, usage.Model, usage.RequestCount,
		usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens, usage.ErrorCount)

	return err
}

// GetUsageStats retrieves aggregated usage statistics
func (s *Storage) GetUsageStats(filter models.StatsFilter) (*models.UsageStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStorageClosed
	}

	query := `SELECT
		COALESCE(SUM(request_count), 0),
		COALESCE(SUM(prompt_tokens), 0),
		COALESCE(SUM(completion_tokens), 0),
		COALESCE(SUM(total_tokens), 0),
		COALESCE(SUM(error_count), 0)
		FROM usage_daily WHERE 1=1`

	var args []interface{}

	if filter.Operation != "" {
		query += " AND operation = ?"
		args = append(args, filter.Operation)
	}
	if filter.StartDate != nil {
		query += " AND date >= ?"
		args = append(args, filter.StartDate.Format("2006-01-02"))
	}
	if filter.EndDate != nil {
		query += " AND date <= ?"
		args = append(args, filter.EndDate.Format("2006-01-02"))
	}

	stats := &models.UsageStats{
		OperationBreakdown: make(map[string]*models.OperationStats),
	}

	err := s.db.QueryRow(query, args...).Scan(
		&stats.TotalRequests,
		&stats.TotalPromptTokens,
		&stats.TotalCompletionTokens,
		&stats.TotalTokens,
		&stats.ErrorCount,
	)
	if err != nil {
		return nil, err
	}

	// Per-operation breakdown
	opQuery := `SELECT operation,
		COALESCE(SUM(request_count), 0),
		COALESCE(SUM(total_tokens), 0),
		COALESCE(SUM(error_count), 0)
		FROM usage_daily WHERE 1=1`

	if filter.Operation != "" {
		opQuery += " AND operation = ?"
	}
	if filter.StartDate != nil {
		opQuery += " AND date >= ?"
	}
	if filter.EndDate != nil {
		opQuery += " AND date <= ?"
	}
	opQuery += " GROUP BY operation"

	rows, err := s.db.Query(opQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var os models.OperationStats
		if err := rows.Scan(&os.Operation, &os.RequestCount, &os.TotalTokens, &os.ErrorCount); err != nil {
			return nil, err
		}
		stats.OperationBreakdown[os.Operation] = &os
	}

	return stats, rows.Err()
}

// GetDailyUsage retrieves daily usage data for a date range
func (s *Storage) GetDailyUsage(startDate, endDate string) ([]*models.DailyUsage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStorageClosed
	}

	query := `SELECT date, operation, model, request_count,
		prompt_tokens, completion_tokens, total_tokens, error_count
		FROM usage_daily WHERE 1=1`

	var args []interface{}

	if startDate != "" {
		query += " AND date >= ?"
		args = append(args, startDate)
	}
	if endDate != "" {
		query += " AND date <= ?"
		args = append(args, endDate)
	}

	query += " ORDER BY date DESC, operation"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usage []*models.DailyUsage
	for rows.Next() {
		var du models.DailyUsage
		err := rows.Scan(&du.Date, &du.Operation, &du.Model, &du.RequestCount,
			&du.PromptTokens, &du.CompletionTokens, &du.TotalTokens, &du.ErrorCount)
		if err != nil {
			return nil, err
		}
		usage = append(usage, &du)
	}

	return usage, rows.Err()
}
