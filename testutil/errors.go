package testutil

// SameErrorString reports whether two errors render the same message,
// treating two nils as equal. It lets tests assert on errors produced
// by other packages without importing their sentinel values.
func SameErrorString(err, target error) bool {
	if err == nil || target == nil {
		return err == target
	}
	return err.Error() == target.Error()
}
