package output

import (
	"context"
	"fmt"
	"time"
)

func StatusBar(ctx context.Context, refreshRate time.Duration, printF func()) {
	ticker := time.NewTicker(refreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			printF()
		case <-ctx.Done():
			return
		}
	}
}

func PrettyProfileStatus(progress, zones int, rate uint64) string {
	return fmt.Sprintf("\r%-40s %-20s %-20s",
		fmt.Sprintf("Profiling: [%s] %3d%%", ProgressBar(progress, 20), progress),
		fmt.Sprintf("Active zones: %d", zones),
		fmt.Sprintf("Samples/s: %4d", rate),
	)
}
