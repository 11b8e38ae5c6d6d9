package scan

import "fmt"

func msgNoFiles(pattern string) string {
	return fmt.Sprintf("No files found for pattern '%s'. Configuration error?", pattern)
}

func msgNoPermission(module, file string) string {
	return fmt.Sprintf("Skipping file %s of module %s: no permission to read the file.", file, module)
}

func msgEmptyFile(module, file string) string {
	return fmt.Sprintf("Skipping file %s of module %s: the file is empty.", file, module)
}

func msgParseFailure(file string, cause error) string {
	return fmt.Sprintf("Parsing of file %s failed due to an exception:\n\n%+v", file, cause)
}
