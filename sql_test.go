package hexdisplay

import (
	"bytes"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	// every connection to :memory: gets its own database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(`CREATE TABLE blobs (id INTEGER PRIMARY KEY, digest TEXT NOT NULL, raw TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func TestHex_SQLParameter(t *testing.T) {
	db := openTestDB(t)
	in := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if _, err := db.Exec(`INSERT INTO blobs (id, digest) VALUES (?, ?), (?, ?)`,
		1, New(in), 2, NewUpper(in)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	tests := []struct {
		id   int
		want string
	}{
		{1, "0123456789abcdef"},
		{2, "0123456789ABCDEF"},
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow(`SELECT digest FROM blobs WHERE id = ?`, tt.id).Scan(&got); err != nil {
			t.Fatalf("select %d: %v", tt.id, err)
		}
		if got != tt.want {
			t.Errorf("stored digest %d = %q, want %q", tt.id, got, tt.want)
		}
	}

	// both spellings decode to the same bytes
	rows, err := db.Query(`SELECT digest FROM blobs ORDER BY id`)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b Bytes
		if err := rows.Scan(&b); err != nil {
			t.Fatalf("Scan() error = %v", err)
		}
		if !bytes.Equal(b, in) {
			t.Errorf("Scan() = %x, want %x", []byte(b), in)
		}
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}
}

func TestBytes_SQLRoundtrip(t *testing.T) {
	db := openTestDB(t)

	tests := []struct {
		name  string
		value Bytes
	}{
		{"empty", Bytes{}},
		{"small", Bytes{0xab, 0x01}},
		{"all values", func() Bytes {
			b := make(Bytes, 256)
			for i := range b {
				b[i] = byte(i)
			}
			return b
		}()},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := db.Exec(`INSERT INTO blobs (id, digest, raw) VALUES (?, ?, ?)`,
				i+1, tt.value.UpperHex(), tt.value); err != nil {
				t.Fatalf("insert: %v", err)
			}

			var digest, raw Bytes
			if err := db.QueryRow(`SELECT digest, raw FROM blobs WHERE id = ?`, i+1).Scan(&digest, &raw); err != nil {
				t.Fatalf("select: %v", err)
			}
			if !bytes.Equal(digest, tt.value) {
				t.Errorf("digest roundtrip = %x, want %x", []byte(digest), []byte(tt.value))
			}
			if !bytes.Equal(raw, tt.value) {
				t.Errorf("raw roundtrip = %x, want %x", []byte(raw), []byte(tt.value))
			}
		})
	}

	t.Run("null", func(t *testing.T) {
		if _, err := db.Exec(`INSERT INTO blobs (id, digest, raw) VALUES (100, '', NULL)`); err != nil {
			t.Fatalf("insert: %v", err)
		}
		raw := Bytes{0xff}
		if err := db.QueryRow(`SELECT raw FROM blobs WHERE id = 100`).Scan(&raw); err != nil {
			t.Fatalf("select: %v", err)
		}
		if raw != nil {
			t.Errorf("Scan(NULL) = %x, want nil", []byte(raw))
		}
	})
}
