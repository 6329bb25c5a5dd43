package model

// tasks is the fixed routine, in display order.
var tasks = []string{
	"Wake up before Fajr",
	"Fajr Prayer",
	"Quran Recitation",
	"Short Nap (Qailulah)",
	"Exercise (Health/Fitness)",
	"Web Development Learning & Practice",
	"Dhuha Prayer",
	"Dhuhr Prayer",
	"Job Search & Remote Job Applications",
	"Asr Prayer",
	"Learning or Project Work",
	"Miswak",
	"Maghrib Prayer",
	"Family Time or Relaxation",
	"Review & Reflect on Progress",
	"Isha Prayer",
	"Sunnah Before Sleep",
	"Sleep",
}

// Tasks returns the routine task names in display order.
// The returned slice is a copy and may be modified by the caller.
func Tasks() []string {
	out := make([]string, len(tasks))
	copy(out, tasks)
	return out
}

// TaskCount returns the number of tracked tasks.
func TaskCount() int {
	return len(tasks)
}

// TaskAt returns the task at display position i.
func TaskAt(i int) (string, bool) {
	if i < 0 || i >= len(tasks) {
		return "", false
	}
	return tasks[i], true
}

// TaskIndex returns the display position of the named task, or -1.
func TaskIndex(name string) int {
	for i, t := range tasks {
		if t == name {
			return i
		}
	}
	return -1
}
