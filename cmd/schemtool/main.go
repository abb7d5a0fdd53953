// schemtool inspects and manages schematic files: info, convert to
// Sponge v2, list the store, delete.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"voxedit.dev/internal/block"
	"voxedit.dev/internal/catalogs"
	"voxedit.dev/internal/edit"
	"voxedit.dev/internal/persistence/indexdb"
	"voxedit.dev/internal/persistence/oplog"
	"voxedit.dev/internal/persistence/schemstore"
	"voxedit.dev/internal/schem"
	"voxedit.dev/internal/tuning"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "info":
			infoCmd(os.Args[2:])
			return
		case "convert":
			convertCmd(os.Args[2:])
			return
		case "list":
			listCmd(os.Args[2:])
			return
		case "rm":
			rmCmd(os.Args[2:])
			return
		}
	}
	fmt.Fprintln(os.Stderr, "usage: schemtool {info|convert|list|rm} ...")
	os.Exit(2)
}

func loadTuning(path string) tuning.Tuning {
	if path == "" {
		return tuning.Default()
	}
	t, err := tuning.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tuning:", err)
		os.Exit(1)
	}
	return t
}

func infoCmd(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	configDir := fs.String("configs", "", "config directory for the block catalog (default: built-in)")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: schemtool info [-configs dir] <file>")
		os.Exit(2)
	}

	cat := catalogs.Builtin()
	if *configDir != "" {
		var err error
		cat, err = catalogs.Load(*configDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "load catalog:", err)
			os.Exit(1)
		}
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "read:", err)
		os.Exit(1)
	}
	vol, err := schem.Decode(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "decode:", err)
		os.Exit(1)
	}

	w, h, l := vol.Dims()
	o := vol.Origin()
	fmt.Printf("dims=%dx%dx%d origin=(%d,%d,%d) cells=%d\n", w, h, l, o.X, o.Y, o.Z, vol.Len())

	counts := map[block.State]int{}
	vol.ForEach(func(_, _, _ int, s block.State) { counts[s]++ })
	fmt.Printf("distinct states=%d\n", len(counts))
	for s, n := range counts {
		mark := ""
		if !cat.Known(s.Name()) {
			mark = "  (not in catalog)"
		}
		fmt.Printf("  %6d  %s%s\n", n, s, mark)
	}
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	_ = fs.Parse(args)
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: schemtool convert <in> <out.schem>")
		os.Exit(2)
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "read:", err)
		os.Exit(1)
	}
	vol, err := schem.Decode(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "decode:", err)
		os.Exit(1)
	}
	out, err := schem.EncodeSponge(vol)
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}
	dst := fs.Arg(1)
	if !strings.HasSuffix(dst, ".schem") {
		dst += ".schem"
	}
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "write:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d bytes)\n", dst, len(out))
}

func listCmd(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	tuningPath := fs.String("tuning", "", "path to tuning.yaml")
	schemDir := fs.String("schematics", "", "schematics directory (overrides tuning)")
	indexPath := fs.String("index", "", "index db path; when set, prints indexed metadata")
	_ = fs.Parse(args)

	tune := loadTuning(*tuningPath)
	dir := tune.SchematicsDir
	if *schemDir != "" {
		dir = *schemDir
	}

	if *indexPath != "" {
		idx, err := indexdb.OpenSQLite(*indexPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "open index:", err)
			os.Exit(1)
		}
		defer idx.Close()
		entries, err := idx.Recent(100)
		if err != nil {
			fmt.Fprintln(os.Stderr, "query:", err)
			os.Exit(1)
		}
		for _, e := range entries {
			fmt.Printf("%s\t%dx%dx%d\t%d bytes\t%s\n",
				e.Name, e.Dims.X, e.Dims.Y, e.Dims.Z, e.SizeBytes,
				e.SavedAt.Format("2006-01-02 15:04:05"))
		}
		return
	}

	store, err := schemstore.New(dir, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open store:", err)
		os.Exit(1)
	}
	names, err := store.List()
	if err != nil {
		fmt.Fprintln(os.Stderr, "list:", err)
		os.Exit(1)
	}
	for _, n := range names {
		fmt.Println(n)
	}
}

func rmCmd(args []string) {
	fs := flag.NewFlagSet("rm", flag.ExitOnError)
	tuningPath := fs.String("tuning", "", "path to tuning.yaml")
	schemDir := fs.String("schematics", "", "schematics directory (overrides tuning)")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: schemtool rm [-schematics dir] <name>")
		os.Exit(2)
	}

	tune := loadTuning(*tuningPath)
	dir := tune.SchematicsDir
	if *schemDir != "" {
		dir = *schemDir
	}
	store, err := schemstore.New(dir, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open store:", err)
		os.Exit(1)
	}
	if err := store.Delete(fs.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "delete:", err)
		os.Exit(1)
	}
	if tune.AuditLog {
		al := oplog.NewAuditLogger(tune.DataDir)
		al.Record(edit.AuditEntry{
			Time:   time.Now().UTC(),
			Player: "schemtool",
			Op:     "delete:" + fs.Arg(0),
		})
		if err := al.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "audit:", err)
		}
	}
}
