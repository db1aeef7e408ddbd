package store

// Names of the data files kept in the data directory.
const (
	StudentsFile = "students.txt"
	TasksFile    = "tasks.txt"
)

// DataFiles lists every file a LineStore is expected to hold.
var DataFiles = []string{StudentsFile, TasksFile}

// LineStore defines the contract for persisting named, ordered lists of text lines.
// Every write replaces the whole named file; there are no partial updates.
type LineStore interface {
	// Read returns the lines of the named file in order.
	// A file that does not exist yet reads as an empty slice, not an error.
	Read(name string) ([]string, error)

	// Write replaces the named file with the given lines.
	Write(name string, lines []string) error

	// Backup copies every data file into destDir on the operating system filesystem.
	// Files that do not exist yet are skipped.
	Backup(destDir string) error

	// Close releases any resources held by the store.
	Close() error
}
