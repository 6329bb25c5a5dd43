package progress

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// KeyPrefix prefixes every month's storage key.
const KeyPrefix = "routineProgress_"

// StorageKey returns the storage key for month, e.g. "routineProgress_5".
func StorageKey(month int) string {
	return KeyPrefix + strconv.Itoa(month)
}

// MonthFromKey parses the month out of a storage key. Keys that do not
// name a valid month are rejected.
func MonthFromKey(key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, KeyPrefix)
	if !ok {
		return 0, false
	}
	month, err := strconv.Atoi(rest)
	if err != nil || month < 1 || month > 12 {
		return 0, false
	}
	return month, true
}

// Partition maps day → task → value for a single month.
type Partition map[int]map[string]string

// Get returns the value for (day, task), or "" when unset.
func (p Partition) Get(day int, task string) string {
	return p[day][task]
}

// Set stores value at (day, task), creating the day entry if needed.
func (p Partition) Set(day int, task, value string) {
	tasks, ok := p[day]
	if !ok {
		tasks = make(map[string]string)
		p[day] = tasks
	}
	tasks[task] = value
}

// IsEmpty reports whether the partition has no day entries.
func (p Partition) IsEmpty() bool {
	return len(p) == 0
}

// Clone returns a deep copy of p.
func (p Partition) Clone() Partition {
	out := make(Partition, len(p))
	for day, tasks := range p {
		cp := make(map[string]string, len(tasks))
		for task, value := range tasks {
			cp[task] = value
		}
		out[day] = cp
	}
	return out
}

// Encode serializes p as a JSON object keyed by the day number string.
func (p Partition) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding partition: %w", err)
	}
	return string(data), nil
}

// DecodePartition parses the JSON form produced by Encode. A JSON null
// decodes to an empty partition.
func DecodePartition(raw string) (Partition, error) {
	var p Partition
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, err
	}
	if p == nil {
		p = Partition{}
	}
	for day, tasks := range p {
		if tasks == nil {
			p[day] = map[string]string{}
		}
	}
	return p, nil
}
