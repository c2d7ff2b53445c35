package specs

// DefaultCatalog is the fixed set of collection descriptors this agent build
// ships with. The audit report categorizes these so operators can see what a
// collection run could touch before deciding what to exclude.
func DefaultCatalog() []interface{} {
	return []interface{}{
		// Static files
		SimpleFile{Path: "/etc/os-release"},
		SimpleFile{Path: "/etc/hostname"},
		SimpleFile{Path: "/proc/cmdline"},
		SimpleFile{Path: "/proc/cpuinfo"},
		SimpleFile{Path: "/proc/meminfo"},
		SimpleFile{Path: "/proc/uptime"},
		SimpleFile{Path: "/etc/fstab"},
		FirstFile{Paths: []string{"/etc/redhat-release", "/etc/system-release", "/etc/issue"}},
		FirstFile{Paths: []string{"/var/log/messages", "/var/log/syslog"}},

		// Glob collections
		GlobFile{Patterns: []string{"/var/log/kern.log*"}},
		GlobFile{Patterns: []string{"/etc/sysconfig/network-scripts/ifcfg-*"}},
		GlobFile{Patterns: []string{"/sys/class/net/*/address"}},

		// Templated files, expanded per discovered unit or device
		TemplateFile{Path: "/proc/%s/limits"},
		TemplateFile{Path: "/sys/block/%s/queue/scheduler"},

		// Static commands
		SimpleCommand{Cmd: "/usr/bin/uptime"},
		SimpleCommand{Cmd: "/usr/sbin/ip addr"},
		SimpleCommand{Cmd: "/usr/bin/df -alP"},
		SimpleCommand{Cmd: "/usr/bin/ps auxww"},
		SimpleCommand{Cmd: "/usr/sbin/dmidecode"},
		SimpleCommand{Cmd: "/usr/bin/systemctl list-units --failed"},

		// Templated commands, expanded per discovered instance
		TemplateCommand{Cmd: "/usr/sbin/ethtool %s"},
		TemplateCommand{Cmd: "/usr/bin/systemctl show %s"},
	}
}

// Report categorizes the built-in catalog for audit output.
func Report() map[string][]string {
	return Categorize(DefaultCatalog())
}
