package beagle

import (
	"fmt"
	"strings"
)

// SampleFile is one file discovered in a run output tree, attributed to the
// sample it belongs to.
type SampleFile struct {
	SampleID string
	Basename string
	Location string
}

// LocalPath converts a file location URI to a filesystem path by stripping
// the file:// scheme. Locations without the scheme pass through unchanged.
func LocalPath(location string) string {
	return strings.TrimPrefix(location, "file://")
}

// FindFilesBySample walks a CWL-style output tree (the decoded value of an
// OutputPort) and collects every File node together with its secondary
// files. The tree mixes three node shapes: plain lists, wrapper objects
// carrying a "file" plus "sampleId", and bare File/Directory objects.
// Descending into a Directory rebinds the sample id to the directory's
// basename. For wrapper nodes a non-empty sampleID acts as a filter;
// non-matching samples are skipped.
func FindFilesBySample(tree any, sampleID string) []SampleFile {
	switch node := tree.(type) {
	case []any:
		var files []SampleFile
		for _, elem := range node {
			files = append(files, FindFilesBySample(elem, sampleID)...)
		}
		return files

	case map[string]any:
		if wrapped, ok := node["file"]; ok {
			file, ok := wrapped.(map[string]any)
			if !ok || nodeClass(file) != "File" {
				return nil
			}
			sid, _ := node["sampleId"].(string)
			if sampleID != "" && sid != sampleID {
				return nil
			}
			return collectFile(sid, file)
		}

		switch nodeClass(node) {
		case "Directory":
			basename, _ := node["basename"].(string)
			return FindFilesBySample(node["listing"], basename)
		case "File":
			return collectFile(sampleID, node)
		}
	}
	return nil
}

// collectFile returns the file node plus its secondary files, all
// attributed to the same sample.
func collectFile(sampleID string, file map[string]any) []SampleFile {
	files := []SampleFile{fileNode(sampleID, file)}
	secondaries, _ := file["secondaryFiles"].([]any)
	for _, sec := range secondaries {
		if m, ok := sec.(map[string]any); ok {
			files = append(files, fileNode(sampleID, m))
		}
	}
	return files
}

func fileNode(sampleID string, file map[string]any) SampleFile {
	basename, _ := file["basename"].(string)
	location, _ := file["location"].(string)
	return SampleFile{SampleID: sampleID, Basename: basename, Location: location}
}

func nodeClass(node map[string]any) string {
	class, _ := node["class"].(string)
	return class
}

// SampleFromFilename extracts the sample id from an output file name;
// everything before the first underscore is the sample.
func SampleFromFilename(name string) string {
	sample, _, _ := strings.Cut(name, "_")
	return sample
}

// PatientID derives the patient id from a sample id: the first two
// dash-separated segments, e.g. "C-0EU9LX-L015-d" -> "C-0EU9LX".
func PatientID(sampleID string) (string, error) {
	parts := strings.SplitN(sampleID, "-", 3)
	if len(parts) < 3 {
		return "", fmt.Errorf("beagle: sample id %q has no patient prefix", sampleID)
	}
	return parts[0] + "-" + parts[1], nil
}
