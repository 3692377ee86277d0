package utils

import (
	"context"
	"testing"
	"time"

	"aerozone/config"
)

func TestArchiveKey(t *testing.T) {
	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.FixedZone("IST", 19800))
	tests := []struct {
		name, filename, want string
	}{
		{"plain", "orders.xlsx", "uploads/20240506T013809Z_abc_orders.xlsx"},
		{"spaces", "PO dump.csv", "uploads/20240506T013809Z_abc_PO_dump.csv"},
		{"windows path", `C:\Users\me\orders.xlsx`, "uploads/20240506T013809Z_abc_orders.xlsx"},
		{"unix path", "../../etc/orders.xlsx", "uploads/20240506T013809Z_abc_orders.xlsx"},
		{"empty", "", "uploads/20240506T013809Z_abc_upload"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArchiveKey(tt.filename, at, "abc"); got != tt.want {
				t.Errorf("ArchiveKey(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestPublicURL(t *testing.T) {
	got := PublicURL("https://files.example.com/", "uploads/a b.xlsx")
	if want := "https://files.example.com/uploads/a%20b.xlsx"; got != want {
		t.Errorf("PublicURL = %q, want %q", got, want)
	}
}

func TestUploadContentType(t *testing.T) {
	if got := uploadContentType("X.XLSX"); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("xlsx content type = %q", got)
	}
	if got := uploadContentType("a.csv"); got != "text/csv" {
		t.Errorf("csv content type = %q", got)
	}
	if got := uploadContentType("blob"); got != "application/octet-stream" {
		t.Errorf("default content type = %q", got)
	}
}

func TestNewR2ArchiveRequiresSettings(t *testing.T) {
	if _, err := NewR2Archive(context.Background(), config.R2Config{Bucket: "b"}); err == nil {
		t.Fatal("expected error for incomplete R2 settings")
	}
}
