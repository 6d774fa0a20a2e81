package source

import "time"

// nowFunc is the reference time for generated history; tests override it to
// pin dates.
var nowFunc = time.Now
