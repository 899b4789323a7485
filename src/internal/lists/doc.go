// Package lists connects configured lists to address sets.
//
// It loads the AddressSet described by a config.ListSource, exports it to a
// file with an MD5 sidecar so unchanged exports are not rewritten, and runs
// exec templates against a temporary export.
//
//	list, set, err := lists.LoadListByName(cfg, "office")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//
//	changed, err := lists.ExportList(set, "/tmp/office.lst")
//
//	err = lists.ExecList(list, set, lists.ExecOptions{
//	    Template: "ipset restore -exist < {{file}}",
//	    Stdout:   os.Stdout,
//	    Stderr:   os.Stderr,
//	})
package lists
