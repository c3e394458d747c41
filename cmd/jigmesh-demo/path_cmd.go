package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jigmesh/pathfinder"
	"jigmesh/triangulate"
	"jigmesh/visibility"
)

var (
	pathPolyFlag  string
	pathHolesFlag []string
	pathFromFlag  string
	pathToFlag    string
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Triangulate a polygon and print the shortest path between two points",
	RunE: func(cmd *cobra.Command, args []string) error {
		outer, holes, err := parsePolygon(pathPolyFlag)
		if err != nil {
			return err
		}

		t := triangulate.New(outer)
		for _, h := range holes {
			t.AddHole(h)
		}
		for _, raw := range pathHolesFlag {
			hole, _, err := parsePolygon(raw)
			if err != nil {
				return err
			}
			t.AddHole(hole)
		}

		mesh, err := t.Go()
		if err != nil {
			return err
		}

		from, err := parsePoint(pathFromFlag)
		if err != nil {
			return err
		}
		to, err := parsePoint(pathToFlag)
		if err != nil {
			return err
		}

		visibility.Update(mesh)

		finder := pathfinder.New(mesh, from, to)
		finder.Go()

		path := finder.Path()
		if len(path) == 0 {
			return fmt.Errorf("no path found between %v and %v", from, to)
		}
		for _, p := range path {
			fmt.Printf("%g %g\n", p.X, p.Y)
		}
		fmt.Printf("length=%g\n", finder.Length())
		return nil
	},
}

func init() {
	pathCmd.Flags().StringVar(&pathPolyFlag, "polygon", "", "(x y, x y, x y) outer ring")
	pathCmd.Flags().StringArrayVar(&pathHolesFlag, "hole", nil, "(x y, x y, x y) hole ring, repeatable")
	pathCmd.Flags().StringVar(&pathFromFlag, "from", "", "'x y' start point")
	pathCmd.Flags().StringVar(&pathToFlag, "to", "", "'x y' end point")
	pathCmd.MarkFlagRequired("polygon")
	pathCmd.MarkFlagRequired("from")
	pathCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(pathCmd)
}
