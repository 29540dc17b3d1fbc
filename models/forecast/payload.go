package forecast

// Payload is the top-level JSON returned by GET /data/2.5/forecast
type Payload struct {
	Cod     string  `json:"cod"`
	Message float64 `json:"message"`
	Cnt     int     `json:"cnt"`
	List    []Entry `json:"list"`
	City    City    `json:"city"`
}

// Today returns the first sample of the list, which is treated as "now".
func (p *Payload) Today() *Entry {
	if p == nil || len(p.List) == 0 {
		return nil
	}
	return &p.List[0]
}
