package view

func col(label, path, transform string) Column {
	return Column{Label: label, Path: path, Transform: transform}
}

func statusCol(label, path string) Column {
	return Column{Label: label, Path: path, Status: true}
}

var builtinViews = []View{
	{
		Name: "nodes",
		Columns: []Column{
			col("Name", "name", ""),
			col("DHCP MAC", "dhcp_mac", "mac"),
			col("Tags", "tags", "join_names"),
			col("Policy", "policy", "name_if_present"),
			col("Metadata count", "metadata", "count_hash"),
			col("Serial", "facts", "nested_val"),
			col("IP", "facts", "nested_val_ip"),
		},
		Detail: []Column{
			col("Name", "name", ""),
			col("DHCP MAC", "dhcp_mac", "mac"),
			statusCol("State", "state.installed"),
			col("Hostname", "hostname", "if_present"),
			col("Policy", "policy", "name_hide_nil"),
			col("Tags", "tags", "join_names"),
			col("Metadata", "metadata", "shallow_hash"),
			col("Facts count", "facts", "count_hash"),
			col("Serial", "facts", "nested_val"),
			col("IP", "facts", "nested_val_ip"),
			col("LLDP port", "facts", "nested_val_lldp"),
			col("Hardware", "hw_info", "shallow_hash"),
			col("Last checkin", "last_checkin", "if_present"),
		},
	},
	{
		Name: "policies",
		Columns: []Column{
			col("Name", "name", ""),
			statusCol("Enabled", "enabled"),
			col("Repo", "repo", "name"),
			col("Task", "task", "name"),
			col("Broker", "broker", "name"),
			col("Max count", "max_count", "if_present"),
			col("Tags", "tags", "join_names"),
			col("Nodes", "nodes", "count_column"),
		},
		Detail: []Column{
			col("Name", "name", ""),
			col("Hostname pattern", "hostname", "if_present"),
			statusCol("Enabled", "enabled"),
			col("Repo", "repo", "name"),
			col("Task", "task", "name"),
			col("Broker", "broker", "name"),
			col("Max count", "max_count", "if_present"),
			col("Tags", "tags", "join_names"),
			col("Node metadata", "node_metadata", "shallow_hash"),
			col("Nodes", "nodes", "count_column"),
		},
	},
	{
		Name: "tags",
		Columns: []Column{
			col("Name", "name", ""),
			col("Rule", "rule", ""),
			col("Nodes", "nodes", "count_column"),
			col("Policies", "policies", "count_column"),
		},
	},
	{
		Name: "brokers",
		Columns: []Column{
			col("Name", "name", ""),
			col("Type", "broker_type", ""),
			col("Configuration", "configuration", "shallow_hash"),
			col("Policies", "policies", "count_column"),
		},
	},
	{
		Name: "repos",
		Columns: []Column{
			col("Name", "name", ""),
			col("URL", "url", "if_present"),
			col("ISO URL", "iso_url", "if_present"),
			col("Task", "task", "name"),
		},
	},
	{
		Name: "tasks",
		Columns: []Column{
			col("Name", "name", ""),
			col("Description", "description", "if_present"),
			col("OS", "os", "shallow_hash"),
			col("Base", "base", "select_name"),
			col("Boot steps", "boot_seq", "count_hash"),
		},
		Detail: []Column{
			col("Name", "name", ""),
			col("Description", "description", "if_present"),
			col("OS", "os", "shallow_hash"),
			col("Base", "base", "select_name"),
			col("Boot sequence", "boot_seq", "shallow_hash"),
			col("Templates", "templates", "count"),
		},
	},
	{
		Name: "hooks",
		Columns: []Column{
			col("Name", "name", ""),
			col("Type", "hook_type", ""),
			col("Configuration", "configuration", "nested"),
		},
	},
	{
		Name: "events",
		Columns: []Column{
			col("Timestamp", "timestamp", ""),
			statusCol("Severity", "severity"),
			col("Entities", "", "event_entities"),
			col("Message", "", "event_msg"),
		},
		Detail: []Column{
			col("Timestamp", "timestamp", ""),
			statusCol("Severity", "severity"),
			col("Entities", "", "event_entities"),
			col("Message", "", "full_event_msg"),
			col("Details", "", "event_misc"),
		},
	},
	{
		Name: "commands",
		Columns: []Column{
			col("Name", "name", ""),
			col("Command", "command", ""),
			statusCol("Status", "status"),
			col("Submitted", "submitted_at", "if_present"),
			col("Finished", "finished_at", "if_present"),
		},
		Detail: []Column{
			col("Name", "name", ""),
			col("Command", "command", ""),
			statusCol("Status", "status"),
			col("Submitted", "submitted_at", "if_present"),
			col("Finished", "finished_at", "if_present"),
			col("Parameters", "params", "nested"),
			col("Errors", "errors", "count"),
		},
	},
}

// Builtin returns the layouts for every Razor collection.
func Builtin() *Set {
	s := NewSet()
	for _, v := range builtinViews {
		s.Add(v)
	}
	return s
}

// Fallback returns a generic layout for a collection without a view.
func Fallback(collection string) View {
	return View{
		Name: collection,
		Columns: []Column{
			col("Name", "name", ""),
			col("ID", "id", "if_present"),
			col("Spec", "spec", "if_present"),
		},
		Detail: []Column{
			col("Name", "name", ""),
			col("ID", "id", "if_present"),
			col("Attributes", "", "shallow_hash"),
		},
	}
}
