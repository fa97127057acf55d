package models

// SystemInfo describes the host the installer is running on.
type SystemInfo struct {
	// OS is the operating system name (linux, darwin, windows).
	OS string `json:"os"`
	// OSVersion is the kernel or OS release string.
	OSVersion string `json:"os_version,omitempty"`
	// Architecture is the machine architecture (amd64, arm64).
	Architecture string `json:"architecture,omitempty"`
	// Distro is the Linux distribution id, empty elsewhere.
	Distro string `json:"distro,omitempty"`
	// PackageManagers lists package managers found on PATH.
	PackageManagers []string `json:"package_managers"`
}

// Suggestion is the result of a stack-suggestion request: tools worth
// installing for the described environment plus relevant login portals.
type Suggestion struct {
	// Tools are proposed installation steps, in suggested order.
	Tools []*Step `json:"tools"`
	// Portals are service portals relevant to the described stack.
	Portals []*Portal `json:"portals"`
}

// ProjectInfo is the result of scanning a project directory.
type ProjectInfo struct {
	// Path is the scanned directory.
	Path string `json:"path"`
	// Languages lists detected programming languages.
	Languages []string `json:"languages"`
	// Frameworks lists detected frameworks or runtimes.
	Frameworks []string `json:"frameworks"`
	// MarkerFiles lists the files the detection was based on.
	MarkerFiles []string `json:"marker_files"`
}
