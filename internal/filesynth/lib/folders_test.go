package lib

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestPlanFoldersDepthZero(t *testing.T) {
	plan := PlanFolders(0, 3)
	if !reflect.DeepEqual(plan, []string{""}) {
		t.Errorf("PlanFolders(0, 3) = %v, want single empty path", plan)
	}
}

func TestPlanFoldersOrdering(t *testing.T) {
	plan := PlanFolders(2, 2)
	want := []string{
		filepath.Join("folder_01", "folder_01"),
		filepath.Join("folder_01", "folder_02"),
		filepath.Join("folder_02", "folder_01"),
		filepath.Join("folder_02", "folder_02"),
	}
	if !reflect.DeepEqual(plan, want) {
		t.Errorf("PlanFolders(2, 2) = %v, want %v (depth-first, increasing index)", plan, want)
	}
}

func TestPlanFoldersCount(t *testing.T) {
	cases := []struct {
		depth, perLevel, want int
	}{
		{0, 1, 1},
		{0, 5, 1},
		{1, 1, 1},
		{1, 4, 4},
		{2, 3, 9},
		{3, 2, 8},
	}
	for _, tc := range cases {
		if got := len(PlanFolders(tc.depth, tc.perLevel)); got != tc.want {
			t.Errorf("len(PlanFolders(%d, %d)) = %d, want %d", tc.depth, tc.perLevel, got, tc.want)
		}
	}
}

func TestPlanFoldersZeroPadding(t *testing.T) {
	plan := PlanFolders(1, 12)
	if plan[0] != "folder_01" {
		t.Errorf("first folder = %q, want folder_01", plan[0])
	}
	if plan[11] != "folder_12" {
		t.Errorf("twelfth folder = %q, want folder_12", plan[11])
	}
}
