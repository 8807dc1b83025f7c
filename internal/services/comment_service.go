package services

import (
	"context"

	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/mapper"
	"github.com/comcode/blog-engine/internal/models"
	"github.com/comcode/blog-engine/internal/repository"
)

// CommentService adds tree assembly and cascading removal to comment CRUD.
type CommentService interface {
	CrudService[models.Comment, dto.CommentDTO, dto.CommentPatch]
	TreeByPost(ctx context.Context, postID uint) ([]dto.CommentDTO, error)
}

type commentService struct {
	CrudService[models.Comment, dto.CommentDTO, dto.CommentPatch]
	repo   repository.CommentRepository
	mapper mapper.CommentMapper
}

func NewCommentService(repo repository.CommentRepository) CommentService {
	m := mapper.NewCommentMapper()
	return &commentService{
		CrudService: NewCrudService[models.Comment, dto.CommentDTO, dto.CommentPatch](repo, m, "comment"),
		repo:        repo,
		mapper:      m,
	}
}

// TreeByPost loads the post's comments in one query and assembles the reply
// tree in memory. Roots and replies keep ascending id order.
func (s *commentService) TreeByPost(ctx context.Context, postID uint) ([]dto.CommentDTO, error) {
	comments, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	nodes := make(map[uint]*dto.CommentDTO, len(comments))
	order := make([]uint, 0, len(comments))
	for _, c := range comments {
		d := s.mapper.ToDTO(c)
		d.Replies = []dto.CommentDTO{}
		nodes[d.ID] = &d
		order = append(order, d.ID)
	}

	roots := []dto.CommentDTO{}
	// Ascending id guarantees parents precede children, so one pass suffices.
	for i := len(order) - 1; i >= 0; i-- {
		node := nodes[order[i]]
		if node.ParentID == nil {
			continue
		}
		parent, ok := nodes[*node.ParentID]
		if !ok {
			continue
		}
		parent.Replies = append([]dto.CommentDTO{*node}, parent.Replies...)
	}
	for _, id := range order {
		node := nodes[id]
		if node.ParentID == nil {
			roots = append(roots, *node)
		}
	}
	return roots, nil
}

// Delete removes the comment and its whole reply subtree.
func (s *commentService) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteSubtree(ctx, id)
}
