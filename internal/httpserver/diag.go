package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type diagResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// diagHandler serves GET /test, a read-only connectivity report: store
// reachability plus up to 10 table names. Purely diagnostic, no state.
func diagHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := diagResponse{
			Backend:          "running",
			Database:         "not available",
			ConnectionStatus: "not connected",
			Collections:      []string{},
		}
		if db == nil {
			c.JSON(http.StatusOK, resp)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			resp.Database = "error: " + err.Error()
			c.JSON(http.StatusOK, resp)
			return
		}
		resp.Database = "connected"
		resp.ConnectionStatus = "connected"

		tables, err := listTables(ctx, db)
		if err != nil {
			resp.Database = "connected but error: " + err.Error()
			c.JSON(http.StatusOK, resp)
			return
		}
		resp.Collections = tables
		c.JSON(http.StatusOK, resp)
	}
}

func listTables(ctx context.Context, db *pgxpool.Pool) ([]string, error) {
	const q = `
SELECT table_name
FROM information_schema.tables
WHERE table_schema = 'public'
ORDER BY table_name
LIMIT 10
`
	rows, err := db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}
