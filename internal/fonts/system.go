package fonts

import (
	"bufio"
	"bytes"
	"os/exec"
	"strings"

	"textedit/internal/logger"
)

// systemFamilies asks fontconfig for installed families. Systems without
// fc-list just get the fallback list.
func systemFamilies() []string {
	bin, err := exec.LookPath("fc-list")
	if err != nil {
		return nil
	}
	out, err := exec.Command(bin, ":", "family").Output()
	if err != nil {
		logger.Warn("fc-list failed", "error", err)
		return nil
	}
	return parseFcList(out)
}

// parseFcList splits fc-list output. A line may carry several
// comma-separated localized names for one family.
func parseFcList(out []byte) []string {
	var fams []string
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		for _, name := range strings.Split(sc.Text(), ",") {
			name = strings.TrimSpace(strings.ReplaceAll(name, `\-`, "-"))
			if name != "" {
				fams = append(fams, name)
			}
		}
	}
	return fams
}
