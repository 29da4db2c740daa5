package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Category is one of the fixed topic tags a problem is filed under.
type Category string

const (
	CategoryArraysHashing    Category = "Arrays & Hasing"
	CategoryTwoPointers      Category = "Two Pointers"
	CategorySlidingWindow    Category = "Sliding Window"
	CategoryStack            Category = "Stack"
	CategoryBinarySearch     Category = "Binary Search"
	CategoryLinkedList       Category = "Linked List"
	CategoryTrees            Category = "Trees"
	CategoryHeap             Category = "Heap / Priority Queue"
	CategoryBacktracking     Category = "Backtracking"
	CategoryTries            Category = "Tries"
	CategoryGraphs           Category = "Graphs"
	CategoryAdvancedGraphs   Category = "Advanced Graphs"
	Category1DDynamicProgram Category = "1-D Dynamic Programming"
	Category2DDynamicProgram Category = "2-D Dynamic Programming"
	CategoryGreedy           Category = "Greedy"
	CategoryIntervals        Category = "Intervals"
	CategoryMathGeometry     Category = "Math & Geometry"
	CategoryBitManipulation  Category = "Bit Manipulation"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryArraysHashing,
	CategoryTwoPointers,
	CategorySlidingWindow,
	CategoryStack,
	CategoryBinarySearch,
	CategoryLinkedList,
	CategoryTrees,
	CategoryHeap,
	CategoryBacktracking,
	CategoryTries,
	CategoryGraphs,
	CategoryAdvancedGraphs,
	Category1DDynamicProgram,
	Category2DDynamicProgram,
	CategoryGreedy,
	CategoryIntervals,
	CategoryMathGeometry,
	CategoryBitManipulation,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory accepts a category name (case-insensitive) or its 1-based
// position in Categories.
func ParseCategory(value string) (Category, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty", ErrUnknownCategory)
	}
	if index, err := strconv.Atoi(trimmed); err == nil {
		if index < 1 || index > len(Categories) {
			return "", fmt.Errorf("%w: index %d", ErrUnknownCategory, index)
		}
		return Categories[index-1], nil
	}
	for _, known := range Categories {
		if strings.EqualFold(string(known), trimmed) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, value)
}
