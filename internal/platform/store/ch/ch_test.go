package ch

import (
	"testing"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

func TestOptions(t *testing.T) {
	o := Options(Config{Addr: SplitAddr(" ch1:9000, ,ch2:9000"), User: "wg", Role: "api", Tag: "v1"})
	if len(o.Addr) != 2 || o.Addr[1] != "ch2:9000" {
		t.Fatalf("addr = %q", o.Addr)
	}
	if o.Auth.Database != "default" || o.Auth.Username != "wg" || o.DialTimeout != 5*time.Second {
		t.Fatalf("options = %+v", o.Auth)
	}
	if o.Compression == nil || o.Compression.Method != clickhouse.CompressionLZ4 {
		t.Fatalf("compression = %+v", o.Compression)
	}
}

func TestBuildClientInfo(t *testing.T) {
	info := BuildClientInfo("moderator", "")
	if len(info.Products) == 0 || info.Products[0].Name != "role" || info.Products[0].Version != "moderator" {
		t.Fatalf("products = %+v", info.Products)
	}
	for _, p := range info.Products {
		if p.Name == "wordguard" {
			t.Fatalf("empty tag should be omitted")
		}
	}
}
