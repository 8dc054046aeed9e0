package scrypt

import (
	"time"

	"github.com/google/uuid"

	"github.com/hwf452/CudaMiner/utils"
)

// RunReport summarizes one completed run for log consumers.
type RunReport struct {
	Id       uuid.UUID     `json:"id"`
	Device   int           `json:"device"`
	Variant  string        `json:"variant"`
	Cache    string        `json:"cache"`
	Units    int           `json:"units"`
	N        uint32        `json:"n"`
	Duration time.Duration `json:"duration"`
	// HashRate work units completed per second
	HashRate float64 `json:"hash_rate"`
}

func newRunReport(cfg *Config, units int, elapsed time.Duration) RunReport {
	r := RunReport{
		Id:       uuid.New(),
		Device:   cfg.Device,
		Variant:  cfg.Variant.String(),
		Cache:    cfg.Cache.String(),
		Units:    units,
		N:        cfg.N,
		Duration: elapsed,
	}
	if elapsed > 0 {
		r.HashRate = float64(units) / elapsed.Seconds()
	}
	return r
}

// Rate returns the hash rate as a human-readable SI figure.
func (r RunReport) Rate() string {
	return utils.SiUnits(r.HashRate, 2) + "H/s"
}

func (r RunReport) String() string {
	if buf, err := utils.MarshalJSON(r); err == nil {
		return string(buf)
	}
	return r.Rate()
}
