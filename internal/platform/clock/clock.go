package clock

import "time"

// FileStampLayout is the timestamp shape embedded in generated save
// file names. It sorts lexically and contains no path separators.
const FileStampLayout = "20060102_150405"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FileStamp renders t for use inside a file name.
func FileStamp(t time.Time) string {
	return t.Format(FileStampLayout)
}
