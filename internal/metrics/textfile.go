package metrics

import (
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// WriteTextfile writes the current ticker_ metrics in Prometheus exposition
// format to path. The write goes to a temp file first and is renamed into
// place, so node_exporter's textfile collector never reads a partial file.
func WriteTextfile(path string) error {
	return writeTextfile(prometheus.DefaultGatherer, path)
}

func writeTextfile(g prometheus.Gatherer, path string) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := expfmt.NewEncoder(f, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if !strings.HasPrefix(mf.GetName(), "ticker_") {
			continue
		}
		if encErr := enc.Encode(mf); encErr != nil {
			f.Close()
			os.Remove(tmp)
			return encErr
		}
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
