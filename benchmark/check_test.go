package benchmark

import (
	"fmt"
	"net/http"
	"testing"
)

// Run against a live server seeded with a granted element, e.g.:
//
//	cerberusctl server &
//	cerberusctl wait
//	curl -X POST localhost:8000/authz/elements \
//	  -d '{"component_name":"experiment","elem_name":"bench","user_id":1}'
//	go test -bench . ./benchmark/...
func BenchmarkCheckHandler(b *testing.B) {
	b.Run("GET /authz/check allowed", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			url := "http://localhost:8000/authz/check?user_id=1&elem_id=1&operation_name=view"
			r, _ := http.NewRequest("GET", url, nil)
			resp, err := http.DefaultClient.Do(r)
			if err == nil {
				_ = resp.Body.Close()
			}
		}
	})

	b.Run("GET /authz/check denied", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			url := fmt.Sprintf("http://localhost:8000/authz/check?user_id=%d&elem_id=1&operation_name=view", 999999)
			r, _ := http.NewRequest("GET", url, nil)
			resp, err := http.DefaultClient.Do(r)
			if err == nil {
				_ = resp.Body.Close()
			}
		}
	})
}
