package effaudit

import (
	"database/sql"
	"math"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists audit results and benchmark runs in SQLite so
// accuracy can be tracked across releases of the heuristics and
// oracle prompts.
type Store struct {
	db *sql.DB
}

// AuditRecord is one persisted efficiency audit.
type AuditRecord struct {
	ID                 int64
	Class              ProblemClass
	Confidence         float64
	InputSize          int
	TheoreticalMinimum int64
	ActualOperations   int64
	EfficiencyRatio    float64
	OverheadRatio      float64
	OracleProvider     string
	OracleModel        string
	AuditedAt          time.Time
}

// BenchmarkRun is one persisted corpus run.
type BenchmarkRun struct {
	ID             int64
	Total          int
	Correct        int
	Accuracy       float64
	MeanConfidence float64
	ElapsedMS      int64
	StartedAt      time.Time
}

// OpenStore opens (creating if needed) the history database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS audit_history (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		class           TEXT NOT NULL,
		confidence      REAL NOT NULL,
		input_size      INTEGER NOT NULL,
		theoretical_min INTEGER NOT NULL,
		actual_ops      INTEGER NOT NULL,
		efficiency      REAL NOT NULL,
		overhead        REAL NOT NULL,
		oracle_provider TEXT DEFAULT '',
		oracle_model    TEXT DEFAULT '',
		audited_at      DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_audit_class ON audit_history(class);
	CREATE INDEX IF NOT EXISTS idx_audit_date ON audit_history(audited_at);

	CREATE TABLE IF NOT EXISTS benchmark_runs (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		total           INTEGER NOT NULL,
		correct         INTEGER NOT NULL,
		accuracy        REAL NOT NULL,
		mean_confidence REAL NOT NULL,
		elapsed_ms      INTEGER NOT NULL,
		started_at      DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_bench_date ON benchmark_runs(started_at);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// InsertAudit records one efficiency audit.
func (s *Store) InsertAudit(r EfficiencyResult, provider, model string) error {
	overhead := r.OverheadRatio
	// SQLite REAL cannot hold +Inf; -1 marks it.
	if math.IsInf(overhead, 0) || math.IsNaN(overhead) {
		overhead = -1
	}
	_, err := s.db.Exec(
		`INSERT INTO audit_history (class, confidence, input_size, theoretical_min, actual_ops, efficiency, overhead, oracle_provider, oracle_model)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(r.Class), r.Confidence, r.InputSize, r.TheoreticalMinimum,
		r.ActualOperations, r.EfficiencyRatio, overhead, provider, model,
	)
	return err
}

// InsertBenchmarkRun records one corpus run and returns its row id.
func (s *Store) InsertBenchmarkRun(summary BenchmarkSummary) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO benchmark_runs (total, correct, accuracy, mean_confidence, elapsed_ms, started_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		summary.Total, summary.Correct, summary.Accuracy,
		summary.MeanConfidence, summary.Elapsed.Milliseconds(), summary.StartedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetRecentBenchmarkRuns returns the latest runs, newest first.
func (s *Store) GetRecentBenchmarkRuns(limit int) ([]BenchmarkRun, error) {
	rows, err := s.db.Query(
		`SELECT id, total, correct, accuracy, mean_confidence, elapsed_ms, started_at
		 FROM benchmark_runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []BenchmarkRun
	for rows.Next() {
		var r BenchmarkRun
		if err := rows.Scan(&r.ID, &r.Total, &r.Correct, &r.Accuracy, &r.MeanConfidence, &r.ElapsedMS, &r.StartedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetAuditsByDateRange returns audits whose timestamp falls in
// [from, to), newest first.
func (s *Store) GetAuditsByDateRange(from, to time.Time) ([]AuditRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, class, confidence, input_size, theoretical_min, actual_ops, efficiency, overhead, oracle_provider, oracle_model, audited_at
		 FROM audit_history WHERE audited_at >= ? AND audited_at < ? ORDER BY audited_at DESC`,
		from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAudits(rows)
}

// GetAuditsByClass returns every audit recorded for one class,
// newest first.
func (s *Store) GetAuditsByClass(class ProblemClass) ([]AuditRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, class, confidence, input_size, theoretical_min, actual_ops, efficiency, overhead, oracle_provider, oracle_model, audited_at
		 FROM audit_history WHERE class = ? ORDER BY audited_at DESC`,
		string(class))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAudits(rows)
}

func scanAudits(rows *sql.Rows) ([]AuditRecord, error) {
	var out []AuditRecord
	for rows.Next() {
		var r AuditRecord
		var class string
		if err := rows.Scan(&r.ID, &class, &r.Confidence, &r.InputSize, &r.TheoreticalMinimum,
			&r.ActualOperations, &r.EfficiencyRatio, &r.OverheadRatio, &r.OracleProvider, &r.OracleModel, &r.AuditedAt); err != nil {
			return nil, err
		}
		r.Class = ProblemClass(class)
		out = append(out, r)
	}
	return out, rows.Err()
}
