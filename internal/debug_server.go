// Package internal hosts the operator-facing debug server: a read-only
// browser over the Badger keyspace with a small stats panel. It is wired
// onto its own port and only when DEBUG_PORT is set.
package internal

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/shirou/gopsutil/mem"
)

//go:embed inspect.html
var templatesFS embed.FS

// InspectRow is one keyspace entry rendered by the inspect page.
type InspectRow struct {
	Key       string
	Namespace string
	Timestamp string
	EntityID  string
	Detail    string
}

// PageData feeds the inspect template.
type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// StartDebugServer serves /inspect on the given port in a background
// goroutine. The prefix query parameter selects the namespace to browse:
// "user:", "session:" or "comment:" (the default).
func StartDebugServer(db *badger.DB, log *slog.Logger, port int) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "comment:"
		}

		data := PageData{
			Prefix: prefix,
			Stats:  collectStats(db),
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapRow(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		log.Info("Starting debug server", "port", port)
		if err := http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux); err != nil {
			log.Warn("debug server stopped", "error", err)
		}
	}()
}

// collectStats counts entries per namespace and adds process/system memory.
func collectStats(db *badger.DB) map[string]any {
	counts := map[string]int{"user:": 0, "session:": 0, "comment:": 0}
	_ = db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			for prefix := range counts {
				if strings.HasPrefix(key, prefix) {
					counts[prefix]++
					break
				}
			}
		}
		return nil
	})

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	stats := map[string]any{
		"users":         counts["user:"],
		"sessions":      counts["session:"],
		"comments":      counts["comment:"],
		"heap_alloc_mb": memStats.HeapAlloc / 1024 / 1024,
		"num_gc":        memStats.NumGC,
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats["sys_mem_used_percent"] = fmt.Sprintf("%.1f", vm.UsedPercent)
	}
	return stats
}

// mapRow splits a store key into its display columns.
// Keys look like "user:{name}", "session:{token}" and
// "comment:{nanos}:{uuid}".
func mapRow(key string, val []byte) InspectRow {
	parts := strings.SplitN(key, ":", 3)
	row := InspectRow{
		Key:       key,
		Namespace: parts[0],
		Timestamp: "--:--:--",
		EntityID:  "--------",
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	switch row.Namespace {
	case "user":
		row.EntityID = parts[1]
	case "session":
		row.EntityID = shorten(parts[1])
	case "comment":
		if len(parts) == 3 {
			if tsNano, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
				row.Timestamp = time.Unix(0, tsNano).Format("15:04:05")
			}
			row.EntityID = shorten(parts[2])
		}
	}
	return row
}

func shorten(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
